package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/counterbuddy/internal/counter"
	"github.com/alexisbeaulieu97/counterbuddy/internal/logger"
)

// field identifies one of the numeric settings inputs.
type field int

const (
	fieldStep field = iota
	fieldUpper
	fieldLower
	fieldCount

	noField field = -1
)

var fieldLabels = [fieldCount]string{
	fieldStep:  "Step Size",
	fieldUpper: "Upper Limit",
	fieldLower: "Lower Limit",
}

// alertBox is the notification boundary of the TUI. Shared by pointer across
// model copies so the session can open it from inside Update.
type alertBox struct {
	message string
	open    bool
}

// Notify implements counter.Notifier.
func (a *alertBox) Notify(message string) {
	a.message = message
	a.open = true
}

func (a *alertBox) dismiss() {
	a.message = ""
	a.open = false
}

// Model is the Bubble Tea model of the counter screen.
type Model struct {
	session *counter.Session
	state   *counter.State
	alert   *alertBox
	log     *logger.Logger

	keys   keyMap
	help   help.Model
	inputs [fieldCount]textinput.Model
	focus  field

	width    int
	quitting bool
}

// NewModel wraps state in a session whose notifications are shown as modal
// alerts. A nil logger discards log output.
func NewModel(state *counter.State, log *logger.Logger) Model {
	if state == nil {
		state = counter.New()
	}
	if log == nil {
		log = logger.Nop()
	}

	alert := &alertBox{}
	m := Model{
		session: counter.NewSession(state, alert),
		state:   state,
		alert:   alert,
		log:     log,
		keys:    defaultKeyMap(),
		help:    help.New(),
		focus:   noField,
	}

	for i := range m.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 10
		in.Width = 12
		m.inputs[i] = in
	}
	m.syncInputs()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// State exposes the counter being driven.
func (m Model) State() *counter.State {
	return m.state
}

// AlertOpen reports whether a notification is being displayed.
func (m Model) AlertOpen() bool {
	return m.alert.open
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// syncInputs copies the normalised state values into every unfocused input.
func (m *Model) syncInputs() {
	values := [fieldCount]int{
		fieldStep:  m.state.Step(),
		fieldUpper: m.state.UpperLimit(),
		fieldLower: m.state.LowerLimit(),
	}
	for i := range m.inputs {
		if field(i) == m.focus {
			continue
		}
		m.inputs[i].SetValue(strconv.Itoa(values[i]))
		m.inputs[i].CursorEnd()
	}
}

func (m *Model) applyInput(f field) {
	raw := m.inputs[f].Value()
	switch f {
	case fieldStep:
		m.state.SetStepText(raw)
	case fieldUpper:
		m.state.SetUpperLimitText(raw)
	case fieldLower:
		m.state.SetLowerLimitText(raw)
	}
	m.log.WithFields(map[string]any{
		"field":       fieldLabels[f],
		"input":       raw,
		"step":        m.state.Step(),
		"upper_limit": m.state.UpperLimit(),
		"lower_limit": m.state.LowerLimit(),
	}).Debug("setting changed")
}

func (m *Model) focusField(f field) tea.Cmd {
	m.blurField()
	m.focus = f
	m.inputs[f].CursorEnd()
	return m.inputs[f].Focus()
}

func (m *Model) blurField() {
	if m.focus == noField {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = noField
	m.syncInputs()
}

func (m *Model) logCommand(action string, applied bool) {
	m.log.WithFields(map[string]any{
		"action":  action,
		"applied": applied,
		"count":   m.state.Count(),
		"history": m.state.HistoryLen(),
	}).Debug("counter command")
}
