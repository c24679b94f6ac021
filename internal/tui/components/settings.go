package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// FieldStyles controls how settings rows are drawn.
type FieldStyles struct {
	Label   lipgloss.Style
	Focused lipgloss.Style
	Blurred lipgloss.Style
}

// SettingsField is a labelled input row. Input is the already rendered
// widget, usually a textinput view.
type SettingsField struct {
	Label   string
	Input   string
	Focused bool
}

// Checkbox renders a boolean setting.
func Checkbox(label string, checked bool, styles FieldStyles) string {
	mark := "[ ]"
	if checked {
		mark = "[x]"
	}
	return lipgloss.JoinHorizontal(lipgloss.Left,
		styles.Label.Render(label),
		styles.Blurred.Render(mark),
	)
}

// SettingsPanel stacks fields vertically with aligned labels.
func SettingsPanel(styles FieldStyles, fields []SettingsField, extra ...string) string {
	width := 0
	for _, f := range fields {
		width = max(width, lipgloss.Width(f.Label))
	}

	rows := make([]string, 0, len(fields)+len(extra))
	for _, f := range fields {
		label := styles.Label.Render(fmt.Sprintf("%-*s", width+1, f.Label+":"))
		input := styles.Blurred.Render(f.Input)
		if f.Focused {
			input = styles.Focused.Render(f.Input)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Left, label, " ", input))
	}
	rows = append(rows, extra...)
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
