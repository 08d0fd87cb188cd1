package controller

import (
	"empctl/internal/tui/model"
	"empctl/internal/tui/view"
	"empctl/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// Update is the central message routing function for the TUI application.
// Every API result arrives here as a message; all state changes happen on
// this goroutine.
func Update(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.(type) {
	case spinner.TickMsg, model.NewLogEntryMsg:
		// too frequent to log
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		handleWindowSizeMsg(m, msg)

	case tea.KeyMsg:
		cmds = append(cmds, handleKeyMsg(m, msg))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		cmds = append(cmds, cmd)

	case model.EmployeesFetchedMsg:
		handleEmployeesFetched(m, msg)

	case model.EmployeeDeletedMsg:
		cmds = append(cmds, handleEmployeeDeleted(m, msg))

	case model.EmployeesBulkDeletedMsg:
		cmds = append(cmds, handleEmployeesBulkDeleted(m, msg))

	case model.FormSubmittedMsg:
		cmds = append(cmds, handleFormSubmitted(m, msg))

	case model.EmployeeUpdatedMsg:
		cmds = append(cmds, handleEmployeeUpdated(m, msg))

	case model.ClipboardCopiedMsg:
		cmds = append(cmds, handleClipboardCopied(m, msg))

	case model.ClearStatusBarMsg:
		m.ClearStatusMessage()

	case model.NewLogEntryMsg:
		handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	default:
		// cursor blinks and anything else addressed to an input or viewport
		cmds = append(cmds, forwardToFocused(m, msg))
	}

	refreshLogViewport(m)
	return m, tea.Batch(cmds...)
}

func forwardToFocused(m *model.Model, msg tea.Msg) tea.Cmd {
	switch {
	case m.CurrentAppMode == model.ModeLogOverlay:
		var cmd tea.Cmd
		m.LogViewport, cmd = m.LogViewport.Update(msg)
		return cmd
	case m.Nav.Page == model.PageForm:
		return m.Form.UpdateFocused(msg)
	case m.Nav.Page == model.PageView && m.Detail.Editing:
		return m.Detail.UpdateFocused(msg)
	}
	return nil
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) {
	if msg.Entry.Level >= logging.LevelInfo || m.DebugMode {
		model.AddRawLineToActivityLog(m, model.FormatLogEntry(msg.Entry))
	}
}

// refreshLogViewport re-renders the log overlay content after the log or
// the viewport width changed.
func refreshLogViewport(m *model.Model) {
	if !m.ActivityLogDirty && m.LogViewportLastWidth == m.LogViewport.Width {
		return
	}
	atBottom := m.LogViewport.AtBottom()
	m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
	if atBottom {
		m.LogViewport.GotoBottom()
	}
	m.LogViewportLastWidth = m.LogViewport.Width
	m.ActivityLogDirty = false
}

func handleClipboardCopied(m *model.Model, msg model.ClipboardCopiedMsg) tea.Cmd {
	if msg.Err != nil {
		LogError(controllerSubsystem, msg.Err, "Failed to copy %s to clipboard", msg.What)
		return m.SetStatusMessage("Copy to clipboard failed", model.StatusBarError, 0)
	}
	LogInfo(controllerSubsystem, "Copied %s to clipboard", msg.What)
	return m.SetStatusMessage("Copied "+msg.What+" to clipboard", model.StatusBarSuccess, 0)
}
