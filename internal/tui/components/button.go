package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ButtonStyles holds the two looks a button can take.
type ButtonStyles struct {
	Enabled  lipgloss.Style
	Disabled lipgloss.Style
}

// Button renders a labelled control with its shortcut key.
type Button struct {
	label    string
	shortcut string
	disabled bool
}

// NewButton creates an enabled button.
func NewButton(label, shortcut string) Button {
	return Button{label: label, shortcut: shortcut}
}

// WithDisabled returns a copy of the button with the disabled flag set.
func (b Button) WithDisabled(disabled bool) Button {
	b.disabled = disabled
	return b
}

// Disabled reports whether the button is rendered as unavailable.
func (b Button) Disabled() bool {
	return b.disabled
}

// Text returns the unstyled button caption.
func (b Button) Text() string {
	if b.shortcut == "" {
		return b.label
	}
	return fmt.Sprintf("[%s] %s", b.shortcut, b.label)
}

// View renders the button.
func (b Button) View(styles ButtonStyles) string {
	if b.disabled {
		return styles.Disabled.Render(b.Text())
	}
	return styles.Enabled.Render(b.Text())
}

// ButtonRow renders buttons side by side separated by a single space.
func ButtonRow(styles ButtonStyles, buttons ...Button) string {
	parts := make([]string, 0, len(buttons)*2)
	for i, b := range buttons {
		if i > 0 {
			parts = append(parts, " ")
		}
		parts = append(parts, b.View(styles))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
