package controller

import (
	"empctl/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the employee directory.
func NewProgram(cfg model.TUIConfig) *tea.Program {
	m := model.InitialModel(cfg)
	return tea.NewProgram(NewAppModel(m), tea.WithAltScreen())
}
