package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Common errors for API operations
var (
	// ErrMissingID is returned when an operation needs a persisted record.
	ErrMissingID = errors.New("employee identifier is required")

	// ErrEmptyBaseURL is returned by NewHTTPClient without a base URL.
	ErrEmptyBaseURL = errors.New("API base URL is empty")
)

const maxErrorBody = 512

// StatusError is a non-2xx response from the directory API.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: unexpected status %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if body := strings.TrimSpace(e.Body); body != "" {
		msg += ": " + body
	}
	return msg
}
