package model

import (
	"empctl/internal/employee"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const inputWidth = 40

// newFieldInputs builds one text input per catalogue field, seeded from e.
func newFieldInputs(e employee.Employee) []textinput.Model {
	fields := employee.Fields()
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.Placeholder
		// no limit; SetValue would otherwise cut long stored values
		ti.CharLimit = 0
		ti.Width = inputWidth
		ti.SetValue(e.Get(f.Key))
		inputs[i] = ti
	}
	return inputs
}

// focusInput focuses inputs[idx] and blurs the rest.
func focusInput(inputs []textinput.Model, idx int) tea.Cmd {
	var cmd tea.Cmd
	for i := range inputs {
		if i == idx {
			cmd = inputs[i].Focus()
		} else {
			inputs[i].Blur()
		}
	}
	return cmd
}

// readInputs copies the input values onto base.
func readInputs(inputs []textinput.Model, base employee.Employee) employee.Employee {
	for i, f := range employee.Fields() {
		if i < len(inputs) {
			base.Set(f.Key, inputs[i].Value())
		}
	}
	return base
}

// FormState is the create/edit form.
type FormState struct {
	Inputs []textinput.Model
	Focus  int
	Errors employee.FieldErrors
	// EditingID is set in edit mode; the form then updates that record.
	EditingID  string
	Submitting bool
	// Seq identifies the in-flight submission; results carrying another
	// value belong to a form the user already left.
	Seq int
}

// NewFormState returns a form pre-filled from editing, or a blank one when
// editing is nil.
func NewFormState(editing *employee.Employee) FormState {
	var seed employee.Employee
	if editing != nil {
		seed = *editing
	}
	return FormState{
		Inputs:    newFieldInputs(seed),
		EditingID: seed.ID,
		Errors:    employee.FieldErrors{},
	}
}

// IsEdit reports whether the form updates an existing record.
func (f *FormState) IsEdit() bool {
	return f.EditingID != ""
}

func (f *FormState) Title() string {
	if f.IsEdit() {
		return "Edit Employee Details"
	}
	return "Employee Details"
}

func (f *FormState) Subtitle() string {
	if f.IsEdit() {
		return "Update the employee information below"
	}
	return "Enter the employee information below"
}

// Values returns the entered record, carrying EditingID in edit mode.
func (f *FormState) Values() employee.Employee {
	return readInputs(f.Inputs, employee.Employee{ID: f.EditingID})
}

// FocusCmd focuses the current field and returns its blink command.
func (f *FormState) FocusCmd() tea.Cmd {
	return focusInput(f.Inputs, f.Focus)
}

func (f *FormState) FocusNext() tea.Cmd {
	if len(f.Inputs) == 0 {
		return nil
	}
	f.Focus = (f.Focus + 1) % len(f.Inputs)
	return f.FocusCmd()
}

func (f *FormState) FocusPrev() tea.Cmd {
	if len(f.Inputs) == 0 {
		return nil
	}
	f.Focus = (f.Focus - 1 + len(f.Inputs)) % len(f.Inputs)
	return f.FocusCmd()
}

func (f *FormState) OnLastField() bool {
	return f.Focus == len(f.Inputs)-1
}

// UpdateFocused forwards msg to the focused input.
func (f *FormState) UpdateFocused(msg tea.Msg) tea.Cmd {
	if f.Focus < 0 || f.Focus >= len(f.Inputs) {
		return nil
	}
	var cmd tea.Cmd
	f.Inputs[f.Focus], cmd = f.Inputs[f.Focus].Update(msg)
	return cmd
}

// Validate runs field validation and stores the result. It reports whether
// the values may be submitted.
func (f *FormState) Validate() (employee.Employee, bool) {
	values := f.Values()
	f.Errors = employee.Validate(values)
	return values, len(f.Errors) == 0
}

// FirstInvalid returns the index of the first field with an error, or -1.
func (f *FormState) FirstInvalid() int {
	for i, field := range employee.Fields() {
		if f.Errors.Has(field.Key) {
			return i
		}
	}
	return -1
}
