package api

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// DefaultBulkConcurrency bounds parallel deletes when the caller passes <= 0.
const DefaultBulkConcurrency = 4

// DeleteReport is the outcome of DeleteMany.
type DeleteReport struct {
	// Deleted lists confirmed identifiers in request order.
	Deleted []string
	// Failed maps each identifier whose delete failed to its error.
	Failed map[string]error
}

// FailedIDs returns the failed identifiers, sorted.
func (r DeleteReport) FailedIDs() []string {
	ids := make([]string, 0, len(r.Failed))
	for id := range r.Failed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Requested is the number of identifiers DeleteMany was asked to remove.
func (r DeleteReport) Requested() int {
	return len(r.Deleted) + len(r.Failed)
}

// DeleteMany deletes every id concurrently and waits for all calls to settle.
// One failure never cancels the remaining calls. Duplicate and empty ids are skipped.
func DeleteMany(ctx context.Context, client EmployeeAPI, ids []string, concurrency int) DeleteReport {
	if concurrency <= 0 {
		concurrency = DefaultBulkConcurrency
	}

	unique := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	// Each goroutine writes its own slot.
	results := make([]error, len(unique))

	// Plain errgroup: the derived context would cancel siblings on first error.
	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, id := range unique {
		g.Go(func() error {
			results[i] = client.Delete(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	report := DeleteReport{Failed: map[string]error{}}
	for i, id := range unique {
		if results[i] != nil {
			report.Failed[id] = results[i]
			continue
		}
		report.Deleted = append(report.Deleted, id)
	}
	return report
}
