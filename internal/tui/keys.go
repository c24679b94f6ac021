package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Increment      key.Binding
	Decrement      key.Binding
	Reset          key.Binding
	ToggleNegative key.Binding
	ToggleTheme    key.Binding
	Info           key.Binding
	History        key.Binding
	Share          key.Binding
	NextField      key.Binding
	PrevField      key.Binding
	LeaveField     key.Binding
	Help           key.Binding
	Quit           key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Increment: key.NewBinding(
			key.WithKeys("+", "=", "up"),
			key.WithHelp("+/↑", "increment"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("-", "_", "down"),
			key.WithHelp("-/↓", "decrement"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		ToggleNegative: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "allow negative"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Info: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "info"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "history"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next setting"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous setting"),
		),
		LeaveField: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc/enter", "leave setting"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Decrement, k.Reset, k.NextField, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increment, k.Decrement, k.Reset},
		{k.ToggleNegative, k.ToggleTheme},
		{k.Info, k.History, k.Share},
		{k.NextField, k.PrevField, k.LeaveField},
		{k.Help, k.Quit},
	}
}
