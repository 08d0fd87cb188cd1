package model

import (
	"empctl/internal/employee"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// DetailState is the view page. The displayed record lives on the
// Navigator; this holds the in-place edit draft.
type DetailState struct {
	Editing bool
	Inputs  []textinput.Model
	Focus   int
	Saving  bool
	// Seq identifies the in-flight save.
	Seq int
}

// StartEdit switches to in-place editing seeded from e.
func (d *DetailState) StartEdit(e employee.Employee) tea.Cmd {
	d.Editing = true
	d.Inputs = newFieldInputs(e)
	d.Focus = 0
	return focusInput(d.Inputs, d.Focus)
}

// StopEdit drops the draft.
func (d *DetailState) StopEdit() {
	d.Editing = false
	d.Inputs = nil
	d.Focus = 0
	d.Saving = false
}

// Draft returns base with the edited values applied. The identifier is kept.
func (d *DetailState) Draft(base employee.Employee) employee.Employee {
	return readInputs(d.Inputs, base)
}

func (d *DetailState) FocusNext() tea.Cmd {
	if len(d.Inputs) == 0 {
		return nil
	}
	d.Focus = (d.Focus + 1) % len(d.Inputs)
	return focusInput(d.Inputs, d.Focus)
}

func (d *DetailState) FocusPrev() tea.Cmd {
	if len(d.Inputs) == 0 {
		return nil
	}
	d.Focus = (d.Focus - 1 + len(d.Inputs)) % len(d.Inputs)
	return focusInput(d.Inputs, d.Focus)
}

func (d *DetailState) OnLastField() bool {
	return d.Focus == len(d.Inputs)-1
}

// UpdateFocused forwards msg to the focused input.
func (d *DetailState) UpdateFocused(msg tea.Msg) tea.Cmd {
	if d.Focus < 0 || d.Focus >= len(d.Inputs) {
		return nil
	}
	var cmd tea.Cmd
	d.Inputs[d.Focus], cmd = d.Inputs[d.Focus].Update(msg)
	return cmd
}
