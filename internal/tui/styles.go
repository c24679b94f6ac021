package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/counterbuddy/internal/counter"
	"github.com/alexisbeaulieu97/counterbuddy/internal/tui/components"
)

type palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	Reset      lipgloss.Color
	High       lipgloss.Color
	Low        lipgloss.Color
}

var (
	lightPalette = palette{
		Background: lipgloss.Color("#f8fafc"),
		Foreground: lipgloss.Color("#0f172a"),
		Muted:      lipgloss.Color("#64748b"),
		Accent:     lipgloss.Color("#2563eb"),
		Border:     lipgloss.Color("#cbd5e1"),
		Reset:      lipgloss.Color("#16a34a"),
		High:       lipgloss.Color("#dc2626"),
		Low:        lipgloss.Color("#0891b2"),
	}
	darkPalette = palette{
		Background: lipgloss.Color("#0f172a"),
		Foreground: lipgloss.Color("#e2e8f0"),
		Muted:      lipgloss.Color("#94a3b8"),
		Accent:     lipgloss.Color("#60a5fa"),
		Border:     lipgloss.Color("#334155"),
		Reset:      lipgloss.Color("#4ade80"),
		High:       lipgloss.Color("#f87171"),
		Low:        lipgloss.Color("#22d3ee"),
	}
)

// theme is the set of styles derived from one palette.
type theme struct {
	name      string
	container lipgloss.Style
	title     lipgloss.Style
	subtitle  lipgloss.Style
	footer    lipgloss.Style
	counter   map[counter.Category]lipgloss.Style
	buttons   components.ButtonStyles
	fields    components.FieldStyles
	alertBox  lipgloss.Style
	alertHint lipgloss.Style
}

func themeFor(dark bool) theme {
	if dark {
		return newTheme("dark", darkPalette)
	}
	return newTheme("light", lightPalette)
}

func newTheme(name string, p palette) theme {
	base := lipgloss.NewStyle().Foreground(p.Foreground)
	counterBase := base.Bold(true).Padding(0, 2).Border(lipgloss.RoundedBorder())

	return theme{
		name:      name,
		container: base.Background(p.Background).Padding(1, 2),
		title:     base.Bold(true).Foreground(p.Accent),
		subtitle:  base.Foreground(p.Muted),
		footer:    base.Foreground(p.Muted).Italic(true).MarginTop(1),
		counter: map[counter.Category]lipgloss.Style{
			counter.CategoryReset:  counterBase.Foreground(p.Reset).BorderForeground(p.Reset),
			counter.CategoryHigh:   counterBase.Foreground(p.High).BorderForeground(p.High),
			counter.CategoryLow:    counterBase.Foreground(p.Low).BorderForeground(p.Low),
			counter.CategoryNormal: counterBase.BorderForeground(p.Border),
		},
		buttons: components.ButtonStyles{
			Enabled:  base.Foreground(p.Accent).Bold(true),
			Disabled: base.Foreground(p.Muted).Faint(true),
		},
		fields: components.FieldStyles{
			Label:   base,
			Focused: base.Foreground(p.Accent).Underline(true),
			Blurred: base,
		},
		alertBox:  base.Border(lipgloss.DoubleBorder()).BorderForeground(p.Accent).Padding(1, 2),
		alertHint: base.Foreground(p.Muted).Italic(true),
	}
}

func (t theme) counterStyle(c counter.Category) lipgloss.Style {
	if style, ok := t.counter[c]; ok {
		return style
	}
	return t.counter[counter.CategoryNormal]
}
