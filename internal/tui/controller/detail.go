package controller

import (
	"empctl/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	detailUpdatedMessage = "Employee updated successfully!"
	detailFailedMessage  = "Error updating employee"
)

func handleViewKey(m *model.Model, keyMsg tea.KeyMsg) tea.Cmd {
	d := &m.Detail
	if d.Saving {
		return nil
	}
	if d.Editing {
		return handleViewEditKey(m, keyMsg)
	}
	if cmd, ok := handleGlobalKey(m, keyMsg); ok {
		return cmd
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Esc), key.Matches(keyMsg, m.Keys.Back):
		return m.GoToList()
	case key.Matches(keyMsg, m.Keys.Edit):
		e, ok := m.CurrentEmployee()
		if !ok {
			return nil
		}
		return d.StartEdit(e)
	case key.Matches(keyMsg, m.Keys.EditInForm):
		if !m.Nav.Edit() {
			LogDebug(m, viewSubsystem, "Edit ignored: no current employee")
			return nil
		}
		return m.OpenForm()
	case key.Matches(keyMsg, m.Keys.Copy):
		e, ok := m.CurrentEmployee()
		if !ok {
			return nil
		}
		out, err := model.EmployeeYAML(e)
		if err != nil {
			LogError(viewSubsystem, err, "Failed to render employee")
			return m.SetStatusMessage("Copy to clipboard failed", model.StatusBarError, 0)
		}
		return model.CopyToClipboardCmd("employee", out)
	}
	return nil
}

func handleViewEditKey(m *model.Model, keyMsg tea.KeyMsg) tea.Cmd {
	d := &m.Detail
	switch {
	case key.Matches(keyMsg, m.Keys.Esc):
		// unsaved edits are dropped
		return m.GoToList()
	case key.Matches(keyMsg, m.Keys.Save):
		return saveDetail(m)
	case key.Matches(keyMsg, m.Keys.Enter):
		if d.OnLastField() {
			return saveDetail(m)
		}
		return d.FocusNext()
	case key.Matches(keyMsg, m.Keys.NextField):
		return d.FocusNext()
	case key.Matches(keyMsg, m.Keys.PrevField):
		return d.FocusPrev()
	}
	return d.UpdateFocused(keyMsg)
}

// saveDetail sends the in-place draft, identifier included.
func saveDetail(m *model.Model) tea.Cmd {
	cur, ok := m.CurrentEmployee()
	if !ok || cur.ID == "" {
		LogDebug(m, viewSubsystem, "Save ignored: employee has no identifier")
		return nil
	}
	draft := m.Detail.Draft(cur)
	m.Detail.Saving = true
	m.Detail.Seq = m.NextSaveSeq()
	LogInfo(viewSubsystem, "Updating employee %s", draft.ID)
	return tea.Batch(model.UpdateEmployeeCmd(m.API, draft, m.Detail.Seq), m.Spinner.Tick)
}

func handleEmployeeUpdated(m *model.Model, msg model.EmployeeUpdatedMsg) tea.Cmd {
	stillEditing := m.Nav.Page == model.PageView && m.Detail.Saving && m.Detail.Seq == msg.Seq
	if stillEditing {
		m.Detail.Saving = false
	}

	if msg.Err != nil {
		LogError(viewSubsystem, msg.Err, "Failed to update employee")
		return m.SetStatusMessage(detailFailedMessage, model.StatusBarError, 0)
	}

	LogInfo(viewSubsystem, "Updated employee %s", msg.Employee.ID)
	if stillEditing {
		m.Nav.View(msg.Employee)
		m.Detail.StopEdit()
	}
	return m.SetStatusMessage(detailUpdatedMessage, model.StatusBarSuccess, 0)
}
