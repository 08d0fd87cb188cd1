package model

import (
	"empctl/internal/api"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// InitialModel constructs the initial model with sensible defaults.
func InitialModel(cfg TUIConfig) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	concurrency := cfg.BulkDeleteConcurrency
	if concurrency <= 0 {
		concurrency = api.DefaultBulkConcurrency
	}
	statusTimeout := cfg.StatusTimeout
	if statusTimeout <= 0 {
		statusTimeout = DefaultStatusTimeout
	}

	list := NewListState()
	list.Loading = true

	return &Model{
		CurrentAppMode:        ModeMain,
		LastAppMode:           ModeMain,
		DebugMode:             cfg.DebugMode,
		API:                   cfg.API,
		BaseURL:               cfg.BaseURL,
		BulkDeleteConcurrency: concurrency,
		Nav:                   NewNavigator(),
		List:                  list,
		ActivityLog:           make([]string, 0),
		ActivityLogDirty:      true,
		LogViewport:           viewport.New(0, 0),
		Spinner:               s,
		Keys:                  DefaultKeyMap(),
		Help:                  help.New(),
		StatusTimeout:         statusTimeout,
		LogChannel:            cfg.LogChannel,
	}
}
