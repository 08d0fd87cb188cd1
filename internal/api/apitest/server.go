package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"empctl/internal/employee"
)

// Request is what MockServer saw for one call.
type Request struct {
	Method      string
	Path        string
	ContentType string
	RequestID   string
	Body        []byte
}

// MockServer is an in-memory REST backend for /employees.
type MockServer struct {
	*httptest.Server

	mu       sync.Mutex
	records  map[string]employee.Employee
	order    []string
	nextID   int
	requests []Request

	// FailStatus forces every response for "METHOD path" to the given status.
	FailStatus map[string]int
}

// NewMockServer starts a server; callers must Close it.
func NewMockServer(seed ...employee.Employee) *MockServer {
	s := &MockServer{records: map[string]employee.Employee{}, FailStatus: map[string]int{}}
	for _, e := range seed {
		if e.ID == "" {
			e.ID = s.allocID()
		}
		s.records[e.ID] = e
		s.order = append(s.order, e.ID)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /employees", s.handleList)
	mux.HandleFunc("POST /employees", s.handleCreate)
	mux.HandleFunc("PUT /employees/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE /employees/{id}", s.handleDelete)
	s.Server = httptest.NewServer(s.capture(mux))
	return s
}

func (s *MockServer) allocID() string {
	s.nextID++
	return "65f0c0ffee" + strconv.Itoa(s.nextID)
}

func (s *MockServer) capture(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:      r.Method,
			Path:        r.URL.EscapedPath(),
			ContentType: r.Header.Get("Content-Type"),
			RequestID:   r.Header.Get("X-Request-ID"),
			Body:        body,
		})
		status, fail := s.FailStatus[r.Method+" "+r.URL.EscapedPath()]
		s.mu.Unlock()

		if fail {
			http.Error(w, `{"message":"forced failure"}`, status)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

func (s *MockServer) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]employee.Employee, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

func (s *MockServer) handleCreate(w http.ResponseWriter, r *http.Request) {
	var d employee.Draft
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	e := employee.Employee{
		ID:            s.allocID(),
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		StreetAddress: d.StreetAddress,
		City:          d.City,
		StateProvince: d.StateProvince,
		PostalCode:    d.PostalCode,
		Country:       d.Country,
	}
	s.records[e.ID] = e
	s.order = append(s.order, e.ID)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, e)
}

func (s *MockServer) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var e employee.Employee
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
		return
	}
	e.ID = id
	s.records[id] = e
	writeJSON(w, http.StatusOK, e)
}

func (s *MockServer) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
		return
	}
	delete(s.records, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Employee deleted"})
}

// Requests returns a copy of the captured requests.
func (s *MockServer) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Len returns the number of stored records.
func (s *MockServer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
