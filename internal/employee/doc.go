// Package employee defines the employee record exchanged with the directory API,
// the catalogue of its descriptive fields, and the minimum-length rules the form
// enforces before a record is submitted.
//
// The backend owns the identifier: a record with an empty ID has not been
// persisted yet, and the client never generates one.
package employee
