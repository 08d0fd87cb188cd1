package model

import (
	"time"

	"empctl/internal/api"
	"empctl/internal/employee"
	"empctl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMain AppMode = iota
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMain:
		return "Main"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines  = 1000
	DefaultStatusTimeout = 3 * time.Second
)

// TUIConfig carries what the TUI needs from bootstrap.
type TUIConfig struct {
	DebugMode             bool
	API                   api.EmployeeAPI
	BaseURL               string
	BulkDeleteConcurrency int
	StatusTimeout         time.Duration
	LogChannel            <-chan logging.LogEntry
}

// Model is the whole TUI state. Only the controller mutates it, from the
// Bubble Tea event loop.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	// Global application state
	QuitApp        bool
	CurrentAppMode AppMode
	LastAppMode    AppMode
	DebugMode      bool

	// Backend
	API                   api.EmployeeAPI
	BaseURL               string
	BulkDeleteConcurrency int
	// saveSeq numbers form submissions and in-place saves.
	saveSeq int

	Nav    *Navigator
	List   ListState
	Form   FormState
	Detail DetailState

	// UI State & Output
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	LogViewportLastWidth int
	Spinner              spinner.Model
	Keys                 KeyMap
	Help                 help.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}
	StatusTimeout        time.Duration

	// Logging
	LogChannel <-chan logging.LogEntry
}

// SetStatusMessage updates the status bar message
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	if clearAfter <= 0 {
		clearAfter = m.StatusTimeout
	}
	if clearAfter <= 0 {
		clearAfter = DefaultStatusTimeout
	}

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// ClearStatusMessage empties the status bar.
func (m *Model) ClearStatusMessage() {
	m.StatusBarMessage = ""
	m.StatusBarMessageType = StatusBarInfo
	m.StatusBarClearCancel = nil
}

// GoToList shows the list page and returns the command that reloads it.
func (m *Model) GoToList() tea.Cmd {
	m.Nav.BackToList()
	m.Form = FormState{}
	m.Detail = DetailState{}
	m.List.Loading = true
	return FetchEmployeesCmd(m.API)
}

// OpenForm prepares the form for the navigator's Editing record.
func (m *Model) OpenForm() tea.Cmd {
	m.Form = NewFormState(m.Nav.Editing)
	m.Detail = DetailState{}
	return m.Form.FocusCmd()
}

// CurrentEmployee is the record shown on the view page.
func (m *Model) CurrentEmployee() (employee.Employee, bool) {
	if m.Nav.Current == nil {
		return employee.Employee{}, false
	}
	return *m.Nav.Current, true
}

// NextSaveSeq returns a fresh number for a form submission or in-place save.
func (m *Model) NextSaveSeq() int {
	m.saveSeq++
	return m.saveSeq
}
