package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/counterbuddy/internal/tui/components"
)

const (
	appTitle   = "Counter Buddy"
	appTagline = "Count your way! Use the buttons below to increment, decrement, or reset the counter."
	footerCredit = "Made by Chetna Madaan. Enjoy counting!"
	footerAbout  = "This allows you to track a count with customizable settings including step size and limits."
)

// View renders the counter screen, or the open alert on top of the header.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	th := themeFor(m.state.IsDarkMode())

	sections := []string{m.headerView(th)}
	if m.alert.open {
		sections = append(sections, "", components.NewAlert(m.alert.message).View(th.alertBox, th.alertHint))
	} else {
		sections = append(sections,
			"",
			m.counterView(th),
			"",
			m.controlsView(th),
			"",
			m.settingsView(th),
			th.footer.Render(lipgloss.JoinVertical(lipgloss.Left, footerCredit, footerAbout)),
			"",
			m.help.View(m.keys),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	style := th.container
	if m.width > 0 {
		style = style.Width(m.width)
	}
	return style.Render(content)
}

func (m Model) headerView(th theme) string {
	themeIcon := "☾"
	if m.state.IsDarkMode() {
		themeIcon = "☀"
	}
	menu := components.ButtonRow(th.buttons,
		components.NewButton(themeIcon, "t"),
		components.NewButton("Info", "i"),
		components.NewButton("History", "h"),
		components.NewButton("Share Count", "s"),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		th.title.Render(appTitle),
		th.subtitle.Render(appTagline),
		menu,
	)
}

func (m Model) counterView(th theme) string {
	category := m.state.Category()
	value := th.counterStyle(category).Render(strconv.Itoa(m.state.Count()))
	return lipgloss.JoinHorizontal(lipgloss.Center, value, " ", th.subtitle.Render(string(category)))
}

func (m Model) controlsView(th theme) string {
	return components.ButtonRow(th.buttons,
		components.NewButton("Increment", "+").WithDisabled(!m.state.CanIncrement()),
		components.NewButton("Decrement", "-").WithDisabled(!m.state.CanDecrement()),
		components.NewButton("Reset", "r"),
	)
}

func (m Model) settingsView(th theme) string {
	fields := make([]components.SettingsField, 0, len(m.inputs))
	for i := range m.inputs {
		fields = append(fields, components.SettingsField{
			Label:   fieldLabels[i],
			Input:   m.inputs[i].View(),
			Focused: field(i) == m.focus,
		})
	}
	negative := components.Checkbox("Allow Negative: ", m.state.AllowNegative(), th.fields)
	return components.SettingsPanel(th.fields, fields, negative)
}
