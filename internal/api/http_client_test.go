package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"empctl/internal/api"
	"empctl/internal/api/apitest"
	"empctl/internal/employee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, baseURL string) *api.HTTPClient {
	t.Helper()
	c, err := api.NewHTTPClient(api.Options{BaseURL: baseURL, Timeout: 2 * time.Second})
	require.NoError(t, err)
	return c
}

func sample() employee.Employee {
	return employee.Employee{
		FirstName:     "Grace",
		LastName:      "Hopper",
		StreetAddress: "1 Navy Yard",
		City:          "Arlington",
		StateProvince: "VA",
		PostalCode:    "22202",
		Country:       "USA",
	}
}

func TestNewHTTPClient_RejectsBadBaseURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "empty", url: "  "},
		{name: "no scheme", url: "localhost:5000"},
		{name: "ftp", url: "ftp://example.com"},
		{name: "no host", url: "http://"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := api.NewHTTPClient(api.Options{BaseURL: tt.url})
			assert.Error(t, err)
		})
	}

	_, err := api.NewHTTPClient(api.Options{})
	assert.ErrorIs(t, err, api.ErrEmptyBaseURL)
}

func TestNewHTTPClient_TrimsTrailingSlash(t *testing.T) {
	c := newClient(t, "http://localhost:5000/")
	assert.Equal(t, "http://localhost:5000", c.BaseURL())
}

func TestHTTPClient_List(t *testing.T) {
	srv := apitest.NewMockServer(sample(), employee.Employee{FirstName: "Alan", LastName: "Turing"})
	defer srv.Close()

	list, err := newClient(t, srv.URL).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.NotEmpty(t, list[0].ID)
	assert.Equal(t, "Grace Hopper", list[0].FullName())

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodGet, reqs[0].Method)
	assert.Equal(t, "/employees", reqs[0].Path)
	assert.NotEmpty(t, reqs[0].RequestID)
	assert.Empty(t, reqs[0].ContentType, "no body, no content type")
}

func TestHTTPClient_List_EmptyCollection(t *testing.T) {
	srv := apitest.NewMockServer()
	defer srv.Close()

	list, err := newClient(t, srv.URL).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestHTTPClient_List_NullBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("null"))
	}))
	defer ts.Close()

	list, err := newClient(t, ts.URL).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestHTTPClient_List_DecodeError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	defer ts.Close()

	_, err := newClient(t, ts.URL).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode GET /employees response")
}

func TestHTTPClient_Create_SendsDraftAndReturnsServerID(t *testing.T) {
	srv := apitest.NewMockServer()
	defer srv.Close()

	in := sample()
	in.ID = "client-made-up"
	created, err := newClient(t, srv.URL).Create(context.Background(), in)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "client-made-up", created.ID)
	assert.Equal(t, "Arlington", created.City)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "application/json", reqs[0].ContentType)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(reqs[0].Body, &body))
	assert.NotContains(t, body, "_id")
	assert.NotContains(t, body, "id")
	assert.Equal(t, "Grace", body["firstName"])
}

func TestHTTPClient_Update_PutsFullRecord(t *testing.T) {
	srv := apitest.NewMockServer(sample())
	defer srv.Close()
	c := newClient(t, srv.URL)

	list, err := c.List(context.Background())
	require.NoError(t, err)
	rec := list[0]
	rec.City = "Springfield"

	updated, err := c.Update(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, updated.ID)
	assert.Equal(t, "Springfield", updated.City)

	reqs := srv.Requests()
	last := reqs[len(reqs)-1]
	assert.Equal(t, http.MethodPut, last.Method)
	assert.Equal(t, "/employees/"+rec.ID, last.Path)
	assert.Equal(t, "application/json", last.ContentType)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(last.Body, &body))
	assert.Equal(t, rec.ID, body["_id"])
}

func TestHTTPClient_Update_RequiresID(t *testing.T) {
	c := newClient(t, "http://127.0.0.1:1")
	_, err := c.Update(context.Background(), sample())
	assert.ErrorIs(t, err, api.ErrMissingID)
	assert.ErrorIs(t, c.Delete(context.Background(), ""), api.ErrMissingID)
}

func TestHTTPClient_Update_KeepsIDWhenServerOmitsIt(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"firstName":"Grace","city":"Normalized City"}`))
	}))
	defer ts.Close()

	rec := sample()
	rec.ID = "abc"
	updated, err := newClient(t, ts.URL).Update(context.Background(), rec)
	require.NoError(t, err)
	assert.Equal(t, "abc", updated.ID)
	assert.Equal(t, "Normalized City", updated.City)
}

func TestHTTPClient_Delete(t *testing.T) {
	srv := apitest.NewMockServer(sample())
	defer srv.Close()
	c := newClient(t, srv.URL)

	list, err := c.List(context.Background())
	require.NoError(t, err)

	require.NoError(t, c.Delete(context.Background(), list[0].ID))
	assert.Equal(t, 0, srv.Len())

	err = c.Delete(context.Background(), list[0].ID)
	var se *api.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
}

func TestHTTPClient_Delete_EscapesID(t *testing.T) {
	srv := apitest.NewMockServer()
	defer srv.Close()

	err := newClient(t, srv.URL).Delete(context.Background(), "a/b")
	require.Error(t, err)
	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/employees/a%2Fb", reqs[0].Path)
}

func TestHTTPClient_StatusError(t *testing.T) {
	srv := apitest.NewMockServer()
	defer srv.Close()
	srv.FailStatus["POST /employees"] = http.StatusInternalServerError

	_, err := newClient(t, srv.URL).Create(context.Background(), sample())
	require.Error(t, err)

	var se *api.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.Equal(t, http.MethodPost, se.Method)
	assert.Contains(t, err.Error(), "forced failure")
}

func TestHTTPClient_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := newClient(t, url).List(context.Background())
	require.Error(t, err)
	var se *api.StatusError
	assert.False(t, errors.As(err, &se))
	assert.Contains(t, err.Error(), "GET /employees")
}

func TestHTTPClient_RespectsContextCancel(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newClient(t, ts.URL).List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
