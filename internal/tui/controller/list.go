package controller

import (
	"fmt"

	"empctl/internal/tui/model"
	"empctl/internal/tui/utils"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func handleListKey(m *model.Model, keyMsg tea.KeyMsg) tea.Cmd {
	l := &m.List
	if l.Confirm != nil {
		return handleConfirmKey(m, keyMsg)
	}
	if cmd, ok := handleGlobalKey(m, keyMsg); ok {
		return cmd
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Up):
		l.MoveCursor(-1)
	case key.Matches(keyMsg, m.Keys.Down):
		l.MoveCursor(1)
	case key.Matches(keyMsg, m.Keys.Toggle):
		if e, ok := l.Highlighted(); ok {
			l.Selection.Toggle(e.ID)
		}
	case key.Matches(keyMsg, m.Keys.SelectAll):
		l.ToggleAll()
	case key.Matches(keyMsg, m.Keys.View):
		if e, ok := l.Highlighted(); ok {
			m.Detail = model.DetailState{}
			m.Nav.View(e)
		}
	case key.Matches(keyMsg, m.Keys.Delete):
		e, ok := l.Highlighted()
		if !ok || e.ID == "" {
			LogDebug(m, listSubsystem, "Delete ignored: no persisted row under the cursor")
			return nil
		}
		l.Confirm = &model.ConfirmDialog{Kind: model.ConfirmDelete, Target: e}
	case key.Matches(keyMsg, m.Keys.BulkDelete):
		if l.Selection.Len() == 0 {
			LogDebug(m, listSubsystem, "Bulk delete ignored: nothing selected")
			return nil
		}
		l.Confirm = &model.ConfirmDialog{Kind: model.ConfirmBulkDelete, IDs: l.Selection.IDs()}
	case key.Matches(keyMsg, m.Keys.Add):
		m.Nav.AddNew()
		return m.OpenForm()
	case key.Matches(keyMsg, m.Keys.Refresh):
		l.Loading = true
		return tea.Batch(model.FetchEmployeesCmd(m.API), m.Spinner.Tick)
	}
	return nil
}

func handleConfirmKey(m *model.Model, keyMsg tea.KeyMsg) tea.Cmd {
	l := &m.List
	if l.Deleting {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.Keys.Confirm):
		l.Deleting = true
		d := l.Confirm
		if d.Kind == model.ConfirmBulkDelete {
			LogInfo(listSubsystem, "Deleting %d employees", len(d.IDs))
			return tea.Batch(model.BulkDeleteCmd(m.API, d.IDs, m.BulkDeleteConcurrency), m.Spinner.Tick)
		}
		LogInfo(listSubsystem, "Deleting employee %s (%s)", d.Target.ID, d.Target.FullName())
		return tea.Batch(model.DeleteEmployeeCmd(m.API, d.Target.ID), m.Spinner.Tick)
	case key.Matches(keyMsg, m.Keys.Deny):
		l.Confirm = nil
	}
	return nil
}

func handleEmployeesFetched(m *model.Model, msg model.EmployeesFetchedMsg) {
	l := &m.List
	l.Loading = false
	if msg.Err != nil {
		LogError(listSubsystem, msg.Err, "Failed to fetch employees")
		// keep what is on screen; an empty first load shows the empty state
		l.Loaded = true
		return
	}
	l.SetEmployees(msg.Employees)
	LogDebug(m, listSubsystem, "Fetched %d employees", len(msg.Employees))
}

func handleEmployeeDeleted(m *model.Model, msg model.EmployeeDeletedMsg) tea.Cmd {
	l := &m.List
	l.Deleting = false
	l.Confirm = nil

	if msg.Err != nil {
		LogError(listSubsystem, msg.Err, "Failed to delete employee %s", msg.ID)
		return m.SetStatusMessage("Failed to delete employee", model.StatusBarError, 0)
	}
	l.Remove(msg.ID)
	m.Nav.Forget(msg.ID)
	LogInfo(listSubsystem, "Deleted employee %s", msg.ID)
	return m.SetStatusMessage("Employee deleted", model.StatusBarSuccess, 0)
}

func handleEmployeesBulkDeleted(m *model.Model, msg model.EmployeesBulkDeletedMsg) tea.Cmd {
	l := &m.List
	l.Deleting = false
	l.Confirm = nil

	report := msg.Report
	l.Remove(report.Deleted...)
	m.Nav.Forget(report.Deleted...)

	failed := report.FailedIDs()
	for _, id := range failed {
		LogError(listSubsystem, report.Failed[id], "Failed to delete employee %s", id)
		l.Selection.SelectOne(id, true)
	}
	l.Selection.Retain(l.IDs())

	deleted := len(report.Deleted)
	if len(failed) == 0 {
		LogInfo(listSubsystem, "Deleted %d employees", deleted)
		return m.SetStatusMessage("Deleted "+utils.Pluralize(deleted, "employee", "employees"), model.StatusBarSuccess, 0)
	}

	text := fmt.Sprintf("Deleted %d of %s; %d failed", deleted, utils.Pluralize(report.Requested(), "employee", "employees"), len(failed))
	LogWarn(listSubsystem, "%s", text)
	msgType := model.StatusBarWarning
	if deleted == 0 {
		msgType = model.StatusBarError
	}
	return m.SetStatusMessage(text, msgType, 0)
}
