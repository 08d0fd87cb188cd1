package controller

import (
	"empctl/internal/tui/model"
	"empctl/internal/tui/view"

	tea "github.com/charmbracelet/bubbletea"
)

// AppModel wraps model.Model and provides the controller logic
type AppModel struct {
	Model *model.Model
}

// NewAppModel creates a new AppModel
func NewAppModel(m *model.Model) *AppModel {
	return &AppModel{Model: m}
}

// Init implements tea.Model. It loads the list and starts draining the log channel.
func (a *AppModel) Init() tea.Cmd {
	m := a.Model
	m.List.Loading = true
	return tea.Batch(
		model.FetchEmployeesCmd(m.API),
		model.ListenForLogEntriesCmd(m.LogChannel),
		m.Spinner.Tick,
	)
}

// Update implements tea.Model
func (a *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := Update(a.Model, msg)
	a.Model = updated
	return a, cmd
}

// View implements tea.Model
func (a *AppModel) View() string {
	return view.Render(a.Model)
}
