package apitest

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"empctl/internal/api"
	"empctl/internal/employee"
)

// Call records one invocation on Fake.
type Call struct {
	Op       string
	ID       string
	Employee employee.Employee
}

// Fake is an in-memory api.EmployeeAPI. Errors can be injected per operation
// and per identifier. It is safe for concurrent use.
type Fake struct {
	mu      sync.Mutex
	records map[string]employee.Employee
	order   []string
	nextID  int
	calls   []Call

	ListErr   error
	CreateErr error
	UpdateErr error
	// DeleteErrs fails Delete for the listed identifiers.
	DeleteErrs map[string]error
	// UpdateHook rewrites the record the server "returns" from Update.
	UpdateHook func(employee.Employee) employee.Employee
}

var _ api.EmployeeAPI = (*Fake)(nil)

// NewFake returns a Fake seeded with records. Records without an ID get one.
func NewFake(seed ...employee.Employee) *Fake {
	f := &Fake{records: map[string]employee.Employee{}, nextID: 1000}
	for _, e := range seed {
		if e.ID == "" {
			e.ID = f.allocID()
		}
		f.records[e.ID] = e
		f.order = append(f.order, e.ID)
	}
	return f
}

func (f *Fake) allocID() string {
	f.nextID++
	return "srv-" + strconv.Itoa(f.nextID)
}

func (f *Fake) record(c Call) {
	f.calls = append(f.calls, c)
}

// List implements api.EmployeeAPI.
func (f *Fake) List(ctx context.Context) ([]employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(Call{Op: "List"})
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	out := make([]employee.Employee, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.records[id])
	}
	return out, nil
}

// Create implements api.EmployeeAPI.
func (f *Fake) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(Call{Op: "Create", Employee: e})
	if f.CreateErr != nil {
		return employee.Employee{}, f.CreateErr
	}
	e.ID = f.allocID()
	f.records[e.ID] = e
	f.order = append(f.order, e.ID)
	return e, nil
}

// Update implements api.EmployeeAPI.
func (f *Fake) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(Call{Op: "Update", ID: e.ID, Employee: e})
	if f.UpdateErr != nil {
		return employee.Employee{}, f.UpdateErr
	}
	if _, ok := f.records[e.ID]; !ok {
		return employee.Employee{}, &api.StatusError{Method: "PUT", Path: "/employees/" + e.ID, StatusCode: 404}
	}
	if f.UpdateHook != nil {
		e = f.UpdateHook(e)
	}
	f.records[e.ID] = e
	return e, nil
}

// Delete implements api.EmployeeAPI.
func (f *Fake) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(Call{Op: "Delete", ID: id})
	if err, ok := f.DeleteErrs[id]; ok {
		return err
	}
	if _, ok := f.records[id]; !ok {
		return &api.StatusError{Method: "DELETE", Path: "/employees/" + id, StatusCode: 404}
	}
	delete(f.records, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

// Calls returns a copy of the recorded calls.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallCount returns how many times op was invoked.
func (f *Fake) CallCount(op string) int {
	n := 0
	for _, c := range f.Calls() {
		if c.Op == op {
			n++
		}
	}
	return n
}

// DeletedIDs returns the identifiers passed to Delete, sorted.
func (f *Fake) DeletedIDs() []string {
	var ids []string
	for _, c := range f.Calls() {
		if c.Op == "Delete" {
			ids = append(ids, c.ID)
		}
	}
	sort.Strings(ids)
	return ids
}

// Get returns the stored record.
func (f *Fake) Get(id string) (employee.Employee, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.records[id]
	return e, ok
}

// String is handy in failure messages.
func (f *Fake) String() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fmt.Sprintf("Fake{%d records, %d calls}", len(f.records), len(f.calls))
}
