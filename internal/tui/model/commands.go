package model

import (
	"context"
	"fmt"

	"empctl/internal/api"
	"empctl/internal/employee"
	"empctl/pkg/logging"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"
)

// FetchEmployeesCmd loads the whole directory.
func FetchEmployeesCmd(client api.EmployeeAPI) tea.Cmd {
	return func() tea.Msg {
		list, err := client.List(context.Background())
		return EmployeesFetchedMsg{Employees: list, Err: err}
	}
}

// SubmitFormCmd creates e, or updates it when it already has an identifier.
// seq is echoed in the result.
func SubmitFormCmd(client api.EmployeeAPI, e employee.Employee, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if e.Persisted() {
			saved, err := client.Update(ctx, e)
			return FormSubmittedMsg{Employee: saved, Seq: seq, Err: err}
		}
		saved, err := client.Create(ctx, e)
		return FormSubmittedMsg{Employee: saved, Created: true, Seq: seq, Err: err}
	}
}

// UpdateEmployeeCmd saves an in-place edit from the view page.
func UpdateEmployeeCmd(client api.EmployeeAPI, e employee.Employee, seq int) tea.Cmd {
	return func() tea.Msg {
		saved, err := client.Update(context.Background(), e)
		return EmployeeUpdatedMsg{Employee: saved, Seq: seq, Err: err}
	}
}

// DeleteEmployeeCmd removes one record.
func DeleteEmployeeCmd(client api.EmployeeAPI, id string) tea.Cmd {
	return func() tea.Msg {
		return EmployeeDeletedMsg{ID: id, Err: client.Delete(context.Background(), id)}
	}
}

// BulkDeleteCmd removes every id and reports once all calls have settled.
func BulkDeleteCmd(client api.EmployeeAPI, ids []string, concurrency int) tea.Cmd {
	return func() tea.Msg {
		return EmployeesBulkDeletedMsg{Report: api.DeleteMany(context.Background(), client, ids, concurrency)}
	}
}

// ListenForLogEntriesCmd waits for the next log entry. It returns nil once
// the channel is closed.
func ListenForLogEntriesCmd(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// clipboardWriteAll is swapped in tests.
var clipboardWriteAll = clipboard.WriteAll

// CopyToClipboardCmd writes text to the system clipboard.
func CopyToClipboardCmd(what, text string) tea.Cmd {
	return func() tea.Msg {
		return ClipboardCopiedMsg{What: what, Err: clipboardWriteAll(text)}
	}
}

// EmployeeYAML renders e the way the copy action puts it on the clipboard.
func EmployeeYAML(e employee.Employee) (string, error) {
	out, err := yaml.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("marshal employee %s: %w", e.ID, err)
	}
	return string(out), nil
}
