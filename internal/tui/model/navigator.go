package model

import "empctl/internal/employee"

// Page identifies which of the three screens is active.
type Page int

const (
	PageList Page = iota
	PageForm
	PageView
)

func (p Page) String() string {
	switch p {
	case PageList:
		return "List"
	case PageForm:
		return "Form"
	case PageView:
		return "View"
	default:
		return "Unknown"
	}
}

// Navigator decides which page is shown and which record it is about.
// It keeps no copy of the employee collection; the list page always reloads
// from the API.
type Navigator struct {
	Page Page
	// Current is the record shown on the view page.
	Current *employee.Employee
	// Editing is the record loaded into the form. Nil means the form creates.
	Editing *employee.Employee
}

// NewNavigator starts on the list page.
func NewNavigator() *Navigator {
	return &Navigator{Page: PageList}
}

// AddNew opens an empty form.
func (n *Navigator) AddNew() {
	n.Editing = nil
	n.Current = nil
	n.Page = PageForm
}

// Edit opens the form for the current record. It reports false and does
// nothing when no record is current.
func (n *Navigator) Edit() bool {
	if n.Current == nil {
		return false
	}
	e := *n.Current
	n.Editing = &e
	n.Page = PageForm
	return true
}

// Save shows the record the server returned after a create or update.
func (n *Navigator) Save(saved employee.Employee) {
	n.Current = &saved
	n.Editing = nil
	n.Page = PageView
}

// View shows e read-only.
func (n *Navigator) View(e employee.Employee) {
	n.Current = &e
	n.Editing = nil
	n.Page = PageView
}

// BackToList drops any current or in-progress record.
func (n *Navigator) BackToList() {
	n.Current = nil
	n.Editing = nil
	n.Page = PageList
}

// Forget clears references to records that were deleted.
func (n *Navigator) Forget(ids ...string) {
	for _, id := range ids {
		if id == "" {
			continue
		}
		if n.Current != nil && n.Current.ID == id {
			n.Current = nil
		}
		if n.Editing != nil && n.Editing.ID == id {
			n.Editing = nil
		}
	}
}

// IsCreating reports whether the form would create a new record.
func (n *Navigator) IsCreating() bool {
	return n.Editing == nil
}
