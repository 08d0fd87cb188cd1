// Package apitest provides test doubles for the employee directory API: Fake, an
// in-memory EmployeeAPI that records calls, and MockServer, an httptest-backed
// REST backend speaking the same wire format as the real service.
package apitest
