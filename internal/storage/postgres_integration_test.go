package storage

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"tracker-grpc/internal/authz"
	"tracker-grpc/internal/models"
)

// Exercises the conditional-write guards against a real database. Set
// TEST_DB_HOST (plus optional TEST_DB_PORT/USER/PASSWORD/NAME) to run.
func newPostgres(t *testing.T) *PostgresStorage {
	t.Helper()

	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		t.Skip("TEST_DB_HOST not set (integration test)")
	}

	getenv := func(key, def string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return def
	}

	s, err := NewPostgresStorage(
		host,
		getenv("TEST_DB_PORT", "5432"),
		getenv("TEST_DB_USER", "postgres"),
		getenv("TEST_DB_PASSWORD", "postgres"),
		getenv("TEST_DB_NAME", "tracker_test"),
		authz.DefaultSuperuserName,
		slog.Default(),
	)
	if err != nil {
		t.Fatalf("NewPostgresStorage: %v", err)
	}

	t.Cleanup(func() {
		s.db.Exec("DELETE FROM records")
		s.db.Close()
	})

	return s
}

func TestPostgresGuards(t *testing.T) {
	s := newPostgres(t)
	ctx := context.Background()

	rec, err := s.CreateRecord(ctx, models.KindTask, "buy milk", "https://example.com", alice)
	if err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}
	if rec.Id == 0 || rec.CreatedAt.IsZero() {
		t.Fatalf("incomplete record returned: %+v", rec)
	}

	if _, err := s.SetPrivate(ctx, rec.Id, true, alice); err != nil {
		t.Fatalf("owner SetPrivate: %v", err)
	}

	// Guard rejections leave the row untouched.
	if _, err := s.SetChecked(ctx, rec.Id, true, bob); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("non-owner SetChecked on private task: err = %v, want ErrNotAuthorized", err)
	}
	if _, err := s.DeleteRecord(ctx, models.KindTask, rec.Id, bob); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("non-owner DeleteRecord on private task: err = %v, want ErrNotAuthorized", err)
	}

	recs, err := s.ListVisible(ctx, models.KindTask, alice.UserId)
	if err != nil {
		t.Fatalf("ListVisible: %v", err)
	}
	if len(recs) != 1 || recs[0].Checked {
		t.Errorf("record mutated by rejected calls: %+v", recs)
	}

	// Superuser clause fires inside the UPDATE itself.
	if _, err := s.SetChecked(ctx, rec.Id, true, jon); err != nil {
		t.Errorf("superuser SetChecked on private task: %v", err)
	}

	if _, err := s.DeleteRecord(ctx, models.KindTask, rec.Id, alice); err != nil {
		t.Fatalf("owner DeleteRecord: %v", err)
	}
}

func TestPostgresVisibilityAndCount(t *testing.T) {
	s := newPostgres(t)
	ctx := context.Background()

	pub, err := s.CreateRecord(ctx, models.KindTask, "public task", "https://example.com", alice)
	if err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}
	priv, err := s.CreateRecord(ctx, models.KindTask, "private task", "https://example.com", alice)
	if err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}
	if _, err := s.SetPrivate(ctx, priv.Id, true, alice); err != nil {
		t.Fatalf("SetPrivate: %v", err)
	}

	recs, err := s.ListVisible(ctx, models.KindTask, bob.UserId)
	if err != nil {
		t.Fatalf("ListVisible: %v", err)
	}
	if len(recs) != 1 || recs[0].Id != pub.Id {
		t.Errorf("bob sees %d records, want only the public one", len(recs))
	}

	count, err := s.CountIncomplete(ctx, bob.UserId)
	if err != nil {
		t.Fatalf("CountIncomplete: %v", err)
	}
	if count != 1 {
		t.Errorf("bob count = %d, want 1", count)
	}
	count, err = s.CountIncomplete(ctx, alice.UserId)
	if err != nil {
		t.Fatalf("CountIncomplete: %v", err)
	}
	if count != 2 {
		t.Errorf("alice count = %d, want 2", count)
	}
}
