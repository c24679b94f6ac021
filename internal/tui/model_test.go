package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/counterbuddy/internal/counter"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()

	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		next, ok := updated.(Model)
		require.True(t, ok)
		m = next
	}
	return m
}

func TestNewModelInitialisesInputs(t *testing.T) {
	t.Parallel()

	m := NewModel(nil, nil)

	require.NotNil(t, m.State())
	require.Equal(t, noField, m.focus)
	require.Equal(t, "1", m.inputs[fieldStep].Value())
	require.Equal(t, "10", m.inputs[fieldUpper].Value())
	require.Equal(t, "0", m.inputs[fieldLower].Value())
	require.Nil(t, m.Init())
}

func TestNewModelUsesProvidedState(t *testing.T) {
	t.Parallel()

	state := counter.NewWithSettings(counter.Settings{Step: 3, UpperLimit: 30, LowerLimit: -6})
	m := NewModel(state, nil)

	require.Same(t, state, m.State())
	require.Equal(t, "3", m.inputs[fieldStep].Value())
	require.Equal(t, "30", m.inputs[fieldUpper].Value())
	require.Equal(t, "-6", m.inputs[fieldLower].Value())
}

func TestWindowSizeIsRecorded(t *testing.T) {
	t.Parallel()

	m := press(t, NewModel(nil, nil), tea.WindowSizeMsg{Width: 90, Height: 30})
	require.Equal(t, 90, m.width)
}
