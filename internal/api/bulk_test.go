package api_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"empctl/internal/api"
	"empctl/internal/api/apitest"
	"empctl/internal/employee"

	"github.com/stretchr/testify/assert"
)

func seeded(n int) (*apitest.Fake, []string) {
	var seed []employee.Employee
	for i := 0; i < n; i++ {
		seed = append(seed, employee.Employee{FirstName: "E", LastName: string(rune('A' + i))})
	}
	f := apitest.NewFake(seed...)
	list, _ := f.List(context.Background())
	ids := make([]string, len(list))
	for i, e := range list {
		ids[i] = e.ID
	}
	return f, ids
}

func TestDeleteMany_AllSucceed(t *testing.T) {
	f, ids := seeded(5)

	report := api.DeleteMany(context.Background(), f, ids[1:4], 2)

	assert.Equal(t, ids[1:4], report.Deleted, "request order is preserved")
	assert.Empty(t, report.Failed)
	assert.Equal(t, 3, report.Requested())

	remaining, _ := f.List(context.Background())
	assert.Len(t, remaining, 2)
}

func TestDeleteMany_PartialFailureIsReported(t *testing.T) {
	f, ids := seeded(4)
	boom := errors.New("boom")
	f.DeleteErrs = map[string]error{ids[2]: boom}

	report := api.DeleteMany(context.Background(), f, ids, 0)

	assert.Equal(t, []string{ids[0], ids[1], ids[3]}, report.Deleted)
	assert.Equal(t, []string{ids[2]}, report.FailedIDs())
	assert.ErrorIs(t, report.Failed[ids[2]], boom)
	assert.Equal(t, 4, f.CallCount("Delete"), "a failure must not cancel the other calls")
}

func TestDeleteMany_SkipsDuplicatesAndEmpty(t *testing.T) {
	f, ids := seeded(2)

	report := api.DeleteMany(context.Background(), f, []string{ids[0], "", ids[0], ids[1]}, 4)

	assert.Equal(t, ids, report.Deleted)
	assert.Equal(t, 2, f.CallCount("Delete"))
}

func TestDeleteMany_Empty(t *testing.T) {
	f, _ := seeded(1)
	report := api.DeleteMany(context.Background(), f, nil, 4)
	assert.Empty(t, report.Deleted)
	assert.Empty(t, report.Failed)
	assert.Equal(t, 0, f.CallCount("Delete"))
}

type slowAPI struct {
	api.EmployeeAPI
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (s *slowAPI) Delete(ctx context.Context, id string) error {
	n := s.inFlight.Add(1)
	for {
		p := s.peak.Load()
		if n <= p || s.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(20 * time.Millisecond)
	s.inFlight.Add(-1)
	return nil
}

func TestDeleteMany_BoundsConcurrency(t *testing.T) {
	s := &slowAPI{}
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	report := api.DeleteMany(context.Background(), s, ids, 3)

	assert.Len(t, report.Deleted, len(ids))
	assert.LessOrEqual(t, s.peak.Load(), int32(3))
	assert.Greater(t, s.peak.Load(), int32(1), "deletes should overlap")
}

func TestDeleteMany_OverHTTP(t *testing.T) {
	srv := apitest.NewMockServer(employee.Employee{FirstName: "A"}, employee.Employee{FirstName: "B"})
	defer srv.Close()
	c, err := api.NewHTTPClient(api.Options{BaseURL: srv.URL})
	assert.NoError(t, err)

	list, err := c.List(context.Background())
	assert.NoError(t, err)

	report := api.DeleteMany(context.Background(), c, []string{list[0].ID, "missing"}, 2)
	assert.Equal(t, []string{list[0].ID}, report.Deleted)
	var se *api.StatusError
	assert.True(t, errors.As(report.Failed["missing"], &se))
	assert.Equal(t, 404, se.StatusCode)
	assert.Equal(t, 1, srv.Len())
}
