package view

import (
	"testing"
	"time"

	"tracker-grpc/internal/models"
)

func rec(id int64, createdAt time.Time, checked bool) *models.Record {
	return &models.Record{Id: id, Kind: models.KindTask, CreatedAt: createdAt, Checked: checked}
}

func TestProjectSortsNewestFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []*models.Record{
		rec(1, base, false),
		rec(3, base.Add(2*time.Minute), false),
		rec(2, base.Add(time.Minute), false),
	}

	got := Project(records, false)

	wantOrder := []int64{3, 2, 1}
	if len(got) != len(wantOrder) {
		t.Fatalf("got %d records, want %d", len(got), len(wantOrder))
	}
	for i, id := range wantOrder {
		if got[i].Id != id {
			t.Errorf("position %d: got id %d, want %d", i, got[i].Id, id)
		}
	}
}

func TestProjectHideCompleted(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []*models.Record{
		rec(1, base, true),
		rec(2, base.Add(time.Minute), false),
		rec(3, base.Add(2*time.Minute), true),
	}

	got := Project(records, true)

	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0].Id != 2 {
		t.Errorf("got id %d, want 2", got[0].Id)
	}

	// Toggle off: everything comes back.
	if got := Project(records, false); len(got) != 3 {
		t.Errorf("with toggle off got %d records, want 3", len(got))
	}
}

func TestProjectTieBreaksOnId(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []*models.Record{
		rec(1, at, false),
		rec(2, at, false),
	}

	got := Project(records, false)
	if got[0].Id != 2 || got[1].Id != 1 {
		t.Errorf("equal created_at: got order [%d %d], want [2 1]", got[0].Id, got[1].Id)
	}
}

func TestIncompleteCountIgnoresToggle(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []*models.Record{
		rec(1, base, true),
		rec(2, base, false),
		rec(3, base, false),
	}

	if got := IncompleteCount(records); got != 2 {
		t.Errorf("IncompleteCount = %d, want 2", got)
	}
}

func TestProjectEmpty(t *testing.T) {
	if got := Project(nil, true); len(got) != 0 {
		t.Errorf("got %d records, want 0", len(got))
	}
	if got := IncompleteCount(nil); got != 0 {
		t.Errorf("IncompleteCount = %d, want 0", got)
	}
}
