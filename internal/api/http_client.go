package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"empctl/internal/employee"
	"empctl/pkg/logging"

	"github.com/google/uuid"
)

const (
	subsystem         = "APIClient"
	employeesPath     = "/employees"
	requestIDHeader   = "X-Request-ID"
	defaultTimeout    = 10 * time.Second
	defaultUserAgent  = "empctl"
	contentTypeHeader = "Content-Type"
	jsonContentType   = "application/json"
)

// Options configures an HTTPClient.
type Options struct {
	// BaseURL is the API root, e.g. "http://localhost:5000". "/employees" is appended.
	BaseURL string
	// Timeout bounds each request when HTTPClient is nil.
	Timeout time.Duration
	// UserAgent is sent on every request.
	UserAgent string
	// HTTPClient overrides the transport, mostly for tests.
	HTTPClient *http.Client
}

// HTTPClient implements EmployeeAPI over JSON/HTTP.
type HTTPClient struct {
	baseURL    *url.URL
	userAgent  string
	httpClient *http.Client
}

var _ EmployeeAPI = (*HTTPClient)(nil)

// NewHTTPClient validates opts and returns a ready client.
func NewHTTPClient(opts Options) (*HTTPClient, error) {
	raw := strings.TrimSpace(opts.BaseURL)
	if raw == "" {
		return nil, ErrEmptyBaseURL
	}
	u, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid API base URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q: missing host", raw)
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}

	return &HTTPClient{baseURL: u, userAgent: ua, httpClient: hc}, nil
}

// BaseURL returns the configured API root.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL.String()
}

// List fetches every employee.
func (c *HTTPClient) List(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	if err := c.do(ctx, http.MethodGet, employeesPath, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []employee.Employee{}
	}
	return out, nil
}

// Create posts the descriptive fields of e.
func (c *HTTPClient) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	var created employee.Employee
	if err := c.do(ctx, http.MethodPost, employeesPath, e.Draft(), &created); err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

// Update puts the full record to /employees/{id}.
func (c *HTTPClient) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	if e.ID == "" {
		return employee.Employee{}, ErrMissingID
	}
	var updated employee.Employee
	if err := c.do(ctx, http.MethodPut, recordPath(e.ID), e, &updated); err != nil {
		return employee.Employee{}, err
	}
	// Some backends answer an update with a partial body; the path identifies the record.
	if updated.ID == "" {
		updated.ID = e.ID
	}
	return updated, nil
}

// Delete removes /employees/{id}. The response body is ignored.
func (c *HTTPClient) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingID
	}
	return c.do(ctx, http.MethodDelete, recordPath(id), nil, nil)
}

func recordPath(id string) string {
	return employeesPath + "/" + url.PathEscape(id)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.baseURL.String() + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", jsonContentType)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, requestID)
	if body != nil {
		req.Header.Set(contentTypeHeader, jsonContentType)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logging.Error(subsystem, err, "%s %s failed (request %s)", method, path, requestID)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	logging.Debug(subsystem, "%s %s -> %d in %s (request %s)", method, path, resp.StatusCode, time.Since(started).Round(time.Millisecond), requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(snippet)}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
