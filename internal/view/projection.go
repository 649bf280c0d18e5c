// Package view is the client-side read projection: a convenience filter and
// sort over records the subscription already delivered. It can only narrow
// what the visibility filter let through, never widen it.
package view

import (
	"sort"

	"tracker-grpc/internal/models"
)

// Project applies the hide-completed toggle and orders newest first.
func Project(records []*models.Record, hideCompleted bool) []*models.Record {
	out := make([]*models.Record, 0, len(records))
	for _, rec := range records {
		if hideCompleted && rec.Checked {
			continue
		}
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Id > out[j].Id
	})

	return out
}

// IncompleteCount counts unchecked records regardless of the hide-completed
// toggle.
func IncompleteCount(records []*models.Record) int {
	count := 0
	for _, rec := range records {
		if !rec.Checked {
			count++
		}
	}
	return count
}
