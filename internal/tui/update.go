package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubble Tea messages and applies counter commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus != noField {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Alerts are modal: the next key only closes them.
	if m.alert.open {
		m.alert.dismiss()
		return m, nil
	}

	if m.focus != noField {
		return m.handleFieldKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Increment):
		m.logCommand("increment", m.state.Increment())
	case key.Matches(msg, m.keys.Decrement):
		m.logCommand("decrement", m.state.Decrement())
	case key.Matches(msg, m.keys.Reset):
		m.state.Reset()
		m.logCommand("reset", true)
	case key.Matches(msg, m.keys.ToggleNegative):
		m.state.ToggleAllowNegative()
		m.logCommand("toggle_allow_negative", true)
	case key.Matches(msg, m.keys.ToggleTheme):
		m.state.ToggleDarkMode()
		m.logCommand("toggle_dark_mode", true)
	case key.Matches(msg, m.keys.Info):
		m.session.ShowInfo()
	case key.Matches(msg, m.keys.History):
		m.session.ShowHistory()
	case key.Matches(msg, m.keys.Share):
		m.session.ShareCount()
	case key.Matches(msg, m.keys.NextField):
		return m, m.focusField(fieldStep)
	case key.Matches(msg, m.keys.PrevField):
		return m, m.focusField(fieldLower)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m Model) handleFieldKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.LeaveField):
		m.blurField()
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		if m.focus == fieldCount-1 {
			m.blurField()
			return m, nil
		}
		return m, m.focusField(m.focus + 1)
	case key.Matches(msg, m.keys.PrevField):
		if m.focus == 0 {
			m.blurField()
			return m, nil
		}
		return m, m.focusField(m.focus - 1)
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		m.applyInput(m.focus)
	}
	return m, cmd
}
