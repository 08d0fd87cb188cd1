package controller

import (
	"empctl/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	formSavedMessage  = "Employee details saved successfully!"
	formFailedMessage = "Failed to save employee. Please try again."
)

func handleFormKey(m *model.Model, keyMsg tea.KeyMsg) tea.Cmd {
	f := &m.Form

	if key.Matches(keyMsg, m.Keys.Esc) {
		LogDebug(m, formSubsystem, "Form cancelled")
		return m.GoToList()
	}
	if f.Submitting {
		return nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Save):
		return submitForm(m)
	case key.Matches(keyMsg, m.Keys.Enter):
		if f.OnLastField() {
			return submitForm(m)
		}
		return f.FocusNext()
	case key.Matches(keyMsg, m.Keys.NextField):
		return f.FocusNext()
	case key.Matches(keyMsg, m.Keys.PrevField):
		return f.FocusPrev()
	}
	return f.UpdateFocused(keyMsg)
}

// submitForm validates the entered values and, when they pass, creates or
// updates the record.
func submitForm(m *model.Model) tea.Cmd {
	f := &m.Form
	values, ok := f.Validate()
	if !ok {
		LogDebug(m, formSubsystem, "Validation failed for %d fields", len(f.Errors))
		if idx := f.FirstInvalid(); idx >= 0 {
			f.Focus = idx
		}
		return f.FocusCmd()
	}

	f.Submitting = true
	f.Seq = m.NextSaveSeq()
	if values.Persisted() {
		LogInfo(formSubsystem, "Updating employee %s", values.ID)
	} else {
		LogInfo(formSubsystem, "Creating employee %s", values.FullName())
	}
	return tea.Batch(model.SubmitFormCmd(m.API, values, f.Seq), m.Spinner.Tick)
}

func handleFormSubmitted(m *model.Model, msg model.FormSubmittedMsg) tea.Cmd {
	stillOnForm := m.Nav.Page == model.PageForm && m.Form.Submitting && m.Form.Seq == msg.Seq
	if stillOnForm {
		m.Form.Submitting = false
	}

	if msg.Err != nil {
		LogError(formSubsystem, msg.Err, "Failed to save employee")
		return m.SetStatusMessage(formFailedMessage, model.StatusBarError, 0)
	}

	if msg.Created {
		LogInfo(formSubsystem, "Created employee %s", msg.Employee.ID)
	} else {
		LogInfo(formSubsystem, "Updated employee %s", msg.Employee.ID)
	}
	if !stillOnForm {
		return m.SetStatusMessage(formSavedMessage, model.StatusBarSuccess, 0)
	}
	m.Form = model.FormState{}
	m.Detail = model.DetailState{}
	m.Nav.Save(msg.Employee)
	return m.SetStatusMessage(formSavedMessage, model.StatusBarSuccess, 0)
}
