package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/counterbuddy/internal/counter"
)

func TestViewShowsCounterAndSettings(t *testing.T) {
	t.Parallel()

	m := NewModel(nil, nil)
	view := m.View()

	require.Contains(t, view, appTitle)
	require.Contains(t, view, "Increment")
	require.Contains(t, view, "Decrement")
	require.Contains(t, view, "Reset")
	require.Contains(t, view, "Step Size")
	require.Contains(t, view, "Upper Limit")
	require.Contains(t, view, "Lower Limit")
	require.Contains(t, view, "Allow Negative: [x]")
	require.Contains(t, view, string(counter.CategoryReset))
	require.Contains(t, view, "Made by Chetna Madaan. Enjoy counting!")
	require.Contains(t, view, "This allows you to track a count with customizable settings including step size and limits.")
}

func TestViewReflectsCategory(t *testing.T) {
	t.Parallel()

	m := NewModel(nil, nil)
	for i := 0; i < 8; i++ {
		m = press(t, m, runeKey("+"))
	}
	require.Contains(t, m.View(), string(counter.CategoryHigh))
}

func TestViewShowsAlertInsteadOfControls(t *testing.T) {
	t.Parallel()

	m := press(t, NewModel(nil, nil), runeKey("+"), runeKey("h"))
	view := m.View()

	require.Contains(t, view, "Count History:")
	require.Contains(t, view, "Incremented by 1")
	require.NotContains(t, view, "Step Size")
}

func TestThemeFollowsDarkMode(t *testing.T) {
	t.Parallel()

	require.Equal(t, "light", themeFor(false).name)
	require.Equal(t, "dark", themeFor(true).name)

	m := press(t, NewModel(nil, nil), runeKey("t"))
	require.True(t, m.State().IsDarkMode())
	require.Contains(t, m.View(), "☀")
}

func TestCounterStyleCoversEveryCategory(t *testing.T) {
	t.Parallel()

	th := themeFor(false)
	for _, c := range []counter.Category{counter.CategoryReset, counter.CategoryHigh, counter.CategoryLow, counter.CategoryNormal} {
		_, ok := th.counter[c]
		require.True(t, ok, "missing style for %s", c)
	}
	require.NotPanics(t, func() { th.counterStyle("unknown").Render("1") })
}

func TestViewEmptyWhenQuitting(t *testing.T) {
	t.Parallel()

	m := NewModel(nil, nil)
	m.quitting = true
	require.Empty(t, m.View())
}
