package model

import (
	"fmt"

	"empctl/internal/employee"
	"empctl/internal/tui/utils"
)

// ConfirmKind says which delete a dialog is asking about.
type ConfirmKind int

const (
	ConfirmDelete ConfirmKind = iota
	ConfirmBulkDelete
)

// ConfirmDialog is the modal shown before any delete.
type ConfirmDialog struct {
	Kind   ConfirmKind
	Target employee.Employee // ConfirmDelete
	IDs    []string          // ConfirmBulkDelete
}

func (d ConfirmDialog) Title() string {
	if d.Kind == ConfirmBulkDelete {
		return "Delete Employees"
	}
	return "Delete Employee"
}

func (d ConfirmDialog) Body() string {
	if d.Kind == ConfirmBulkDelete {
		return fmt.Sprintf("Are you sure you want to delete %s? This action cannot be undone.",
			utils.Pluralize(len(d.IDs), "employee", "employees"))
	}
	return fmt.Sprintf("Are you sure you want to delete %s %s? This action cannot be undone.",
		d.Target.FirstName, d.Target.LastName)
}

// ListState is the list page: the last fetched collection, the cursor and the
// checkbox selection.
type ListState struct {
	Employees []employee.Employee
	Cursor    int
	Selection *Selection
	Loading   bool
	Loaded    bool
	Confirm   *ConfirmDialog
	// Deleting is set while a delete or bulk delete is in flight.
	Deleting bool
}

func NewListState() ListState {
	return ListState{Selection: NewSelection()}
}

// IDs returns the identifiers of the listed employees in display order.
func (l *ListState) IDs() []string {
	ids := make([]string, 0, len(l.Employees))
	for _, e := range l.Employees {
		ids = append(ids, e.ID)
	}
	return ids
}

// SetEmployees replaces the collection with a fresh fetch result.
func (l *ListState) SetEmployees(list []employee.Employee) {
	l.Employees = list
	l.Loaded = true
	l.Loading = false
	l.Selection.Retain(l.IDs())
	l.clampCursor()
}

// Remove drops rows and their selection marks.
func (l *ListState) Remove(ids ...string) {
	if len(ids) == 0 {
		return
	}
	gone := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		gone[id] = struct{}{}
		l.Selection.SelectOne(id, false)
	}
	kept := make([]employee.Employee, 0, len(l.Employees))
	for _, e := range l.Employees {
		if _, ok := gone[e.ID]; !ok {
			kept = append(kept, e)
		}
	}
	l.Employees = kept
	l.clampCursor()
}

// Highlighted returns the row under the cursor.
func (l *ListState) Highlighted() (employee.Employee, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Employees) {
		return employee.Employee{}, false
	}
	return l.Employees[l.Cursor], true
}

func (l *ListState) MoveCursor(delta int) {
	l.Cursor += delta
	l.clampCursor()
}

// ToggleAll implements the header checkbox: a full selection is cleared,
// anything else becomes a full selection.
func (l *ListState) ToggleAll() {
	l.Selection.SelectAll(l.IDs(), !l.Selection.AllSelected(len(l.Employees)))
}

func (l *ListState) clampCursor() {
	if l.Cursor >= len(l.Employees) {
		l.Cursor = len(l.Employees) - 1
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
}
