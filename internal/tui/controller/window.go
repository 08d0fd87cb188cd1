package controller

import (
	"empctl/internal/tui/model"
	"empctl/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// handleWindowSizeMsg updates the model with the new terminal dimensions.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width
	m.LogViewport.Width, m.LogViewport.Height = view.LogViewportSize(msg.Width, msg.Height)
}
