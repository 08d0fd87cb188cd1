// Package api is the single client capability for the employee directory REST API.
//
// The TUI pages never build URLs or issue HTTP requests themselves. They receive
// an EmployeeAPI and call its four operations:
//
//	List    GET    {base}/employees
//	Create  POST   {base}/employees          descriptive fields only
//	Update  PUT    {base}/employees/{id}     full record, identifier included
//	Delete  DELETE {base}/employees/{id}
//
// The backend is the source of truth. Create and Update return the server's
// representation of the record, which callers must display instead of their
// local copy. Delete success is inferred from a 2xx status alone.
//
// Any non-2xx response is reported as a *StatusError carrying the status code.
// DeleteMany fans a bulk delete out over the same
// client and reports exactly which identifiers failed.
package api
