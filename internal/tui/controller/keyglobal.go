package controller

import (
	"empctl/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg routes a key press to the active overlay or page.
func handleKeyMsg(m *model.Model, keyMsg tea.KeyMsg) tea.Cmd {
	if key.Matches(keyMsg, m.Keys.ForceQuit) {
		return quit(m)
	}

	switch m.CurrentAppMode {
	case model.ModeLogOverlay:
		return handleLogOverlayKey(m, keyMsg)
	case model.ModeHelpOverlay:
		if key.Matches(keyMsg, m.Keys.Help) || key.Matches(keyMsg, m.Keys.Esc) {
			m.CurrentAppMode = m.LastAppMode
		}
		return nil
	}

	switch m.Nav.Page {
	case model.PageForm:
		return handleFormKey(m, keyMsg)
	case model.PageView:
		return handleViewKey(m, keyMsg)
	default:
		return handleListKey(m, keyMsg)
	}
}

// handleGlobalKey handles the keys shared by the pages that have no focused
// text input. It reports whether the key was consumed.
func handleGlobalKey(m *model.Model, keyMsg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(keyMsg, m.Keys.Quit):
		return quit(m), true
	case key.Matches(keyMsg, m.Keys.Help):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeHelpOverlay
		return nil, true
	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.LastAppMode = m.CurrentAppMode
		m.CurrentAppMode = model.ModeLogOverlay
		m.LogViewport.GotoBottom()
		return nil, true
	}
	return nil, false
}

func handleLogOverlayKey(m *model.Model, keyMsg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Esc):
		m.CurrentAppMode = m.LastAppMode
		return nil
	case key.Matches(keyMsg, m.Keys.CopyLogs):
		return model.CopyToClipboardCmd("logs", model.ActivityLogText(m))
	}
	var cmd tea.Cmd
	m.LogViewport, cmd = m.LogViewport.Update(keyMsg)
	return cmd
}

func quit(m *model.Model) tea.Cmd {
	m.QuitApp = true
	m.CurrentAppMode = model.ModeQuitting
	return tea.Quit
}
