package api

import (
	"context"

	"empctl/internal/employee"
)

// EmployeeAPI is the CRUD contract the TUI pages depend on.
type EmployeeAPI interface {
	// List returns the full collection.
	List(ctx context.Context) ([]employee.Employee, error)

	// Create persists a new record and returns it with the server-assigned ID.
	// Any ID on e is ignored.
	Create(ctx context.Context, e employee.Employee) (employee.Employee, error)

	// Update replaces the record addressed by e.ID and returns the server's copy.
	Update(ctx context.Context, e employee.Employee) (employee.Employee, error)

	// Delete removes the record with the given identifier.
	Delete(ctx context.Context, id string) error
}
