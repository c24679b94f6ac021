package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/counterbuddy/internal/counter"
	"github.com/alexisbeaulieu97/counterbuddy/internal/logger"
	"github.com/alexisbeaulieu97/counterbuddy/internal/tui"
)

var interactiveRunner = runInteractive

func runInteractive(state *counter.State, log *logger.Logger) error {
	p := tea.NewProgram(tui.NewModel(state, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
