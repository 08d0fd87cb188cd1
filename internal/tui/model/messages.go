package model

import (
	"empctl/internal/api"
	"empctl/internal/employee"
	"empctl/pkg/logging"
)

// ---- API results ----

// EmployeesFetchedMsg carries the result of a List call.
type EmployeesFetchedMsg struct {
	Employees []employee.Employee
	Err       error
}

// FormSubmittedMsg carries the result of the form's Create or Update.
type FormSubmittedMsg struct {
	Employee employee.Employee
	Created  bool
	Seq      int
	Err      error
}

// EmployeeUpdatedMsg carries the result of an in-place edit on the view page.
type EmployeeUpdatedMsg struct {
	Employee employee.Employee
	Seq      int
	Err      error
}

// EmployeeDeletedMsg carries the result of a single delete.
type EmployeeDeletedMsg struct {
	ID  string
	Err error
}

// EmployeesBulkDeletedMsg carries the outcome of a bulk delete.
type EmployeesBulkDeletedMsg struct {
	Report api.DeleteReport
}

// ---- UI housekeeping ----

// ClearStatusBarMsg is sent when a status message expires.
type ClearStatusBarMsg struct{}

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// ClipboardCopiedMsg reports a clipboard write.
type ClipboardCopiedMsg struct {
	What string
	Err  error
}
