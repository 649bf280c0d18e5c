package storage

import (
	"context"
	"errors"
	"testing"

	"tracker-grpc/internal/authz"
	"tracker-grpc/internal/models"
)

var (
	alice = &authz.Actor{UserId: 1, Username: "alice"}
	bob   = &authz.Actor{UserId: 2, Username: "bob"}
	jon   = &authz.Actor{UserId: 3, Username: "JON"}
)

func newStore(t *testing.T) *MemoryStorage {
	t.Helper()
	return NewMemoryStorage(authz.DefaultSuperuserName)
}

func mustCreate(t *testing.T, s *MemoryStorage, kind models.Kind, actor *authz.Actor) *models.Record {
	t.Helper()
	rec, err := s.CreateRecord(context.Background(), kind, "buy milk", "https://example.com", actor)
	if err != nil {
		t.Fatalf("CreateRecord: %v", err)
	}
	return rec
}

func mustSetPrivate(t *testing.T, s *MemoryStorage, id int64, actor *authz.Actor) {
	t.Helper()
	if _, err := s.SetPrivate(context.Background(), id, true, actor); err != nil {
		t.Fatalf("SetPrivate: %v", err)
	}
}

func TestCreateSetsOwnerAndDefaults(t *testing.T) {
	s := newStore(t)
	rec := mustCreate(t, s, models.KindTask, alice)

	if rec.OwnerId != alice.UserId {
		t.Errorf("OwnerId = %d, want %d", rec.OwnerId, alice.UserId)
	}
	if rec.OwnerName != alice.Username {
		t.Errorf("OwnerName = %q, want %q", rec.OwnerName, alice.Username)
	}
	if rec.Checked || rec.Private {
		t.Errorf("new record must start unchecked and public: %+v", rec)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestAnonymousMutationsFail(t *testing.T) {
	s := newStore(t)
	rec := mustCreate(t, s, models.KindTask, alice)
	ctx := context.Background()

	if _, err := s.CreateRecord(ctx, models.KindTask, "x", "y", nil); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("anonymous create: err = %v, want ErrNotAuthorized", err)
	}
	if _, err := s.DeleteRecord(ctx, models.KindTask, rec.Id, nil); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("anonymous delete: err = %v, want ErrNotAuthorized", err)
	}
	if _, err := s.SetChecked(ctx, rec.Id, true, nil); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("anonymous set-checked: err = %v, want ErrNotAuthorized", err)
	}
	if _, err := s.SetPrivate(ctx, rec.Id, true, nil); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("anonymous set-private: err = %v, want ErrNotAuthorized", err)
	}

	// No write happened anywhere above.
	if s.Len() != 1 {
		t.Errorf("store holds %d records, want 1", s.Len())
	}
	recs, _ := s.ListVisible(ctx, models.KindTask, alice.UserId)
	if len(recs) != 1 || recs[0].Checked || recs[0].Private {
		t.Errorf("record mutated by rejected calls: %+v", recs[0])
	}
}

func TestOwnerHasFullControl(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	rec := mustCreate(t, s, models.KindTask, alice)
	mustSetPrivate(t, s, rec.Id, alice)

	// Owner may toggle completion and privacy on their private record.
	got, err := s.SetChecked(ctx, rec.Id, true, alice)
	if err != nil {
		t.Fatalf("owner SetChecked on private record: %v", err)
	}
	if !got.Checked {
		t.Error("Checked not set")
	}

	if _, err := s.SetPrivate(ctx, rec.Id, false, alice); err != nil {
		t.Fatalf("owner SetPrivate: %v", err)
	}

	if _, err := s.DeleteRecord(ctx, models.KindTask, rec.Id, alice); err != nil {
		t.Fatalf("owner DeleteRecord: %v", err)
	}
	if s.Len() != 0 {
		t.Error("record not deleted")
	}
}

func TestNonOwnerOnPublicRecord(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	for _, kind := range []models.Kind{models.KindTask, models.KindProject} {
		rec := mustCreate(t, s, kind, alice)

		// May toggle completion and delete.
		if _, err := s.SetChecked(ctx, rec.Id, true, bob); err != nil {
			t.Errorf("%s: non-owner SetChecked on public record: %v", kind, err)
		}

		// May not toggle privacy.
		if _, err := s.SetPrivate(ctx, rec.Id, true, bob); !errors.Is(err, ErrNotAuthorized) {
			t.Errorf("%s: non-owner SetPrivate: err = %v, want ErrNotAuthorized", kind, err)
		}

		if _, err := s.DeleteRecord(ctx, kind, rec.Id, bob); err != nil {
			t.Errorf("%s: non-owner DeleteRecord on public record: %v", kind, err)
		}
	}
}

func TestNonOwnerOnPrivateRecord(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	rec := mustCreate(t, s, models.KindTask, alice)
	mustSetPrivate(t, s, rec.Id, alice)

	if _, err := s.DeleteRecord(ctx, models.KindTask, rec.Id, bob); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("delete: err = %v, want ErrNotAuthorized", err)
	}
	if _, err := s.SetChecked(ctx, rec.Id, true, bob); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("set-checked: err = %v, want ErrNotAuthorized", err)
	}
	if _, err := s.SetPrivate(ctx, rec.Id, false, bob); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("set-private: err = %v, want ErrNotAuthorized", err)
	}
}

func TestSuperuserExceptionTasksOnly(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	// Private task of another user: superuser may check and delete it,
	// but not make it public.
	taskRec := mustCreate(t, s, models.KindTask, alice)
	mustSetPrivate(t, s, taskRec.Id, alice)

	if _, err := s.SetChecked(ctx, taskRec.Id, true, jon); err != nil {
		t.Errorf("superuser SetChecked on private task: %v", err)
	}
	if _, err := s.SetPrivate(ctx, taskRec.Id, false, jon); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("superuser SetPrivate: err = %v, want ErrNotAuthorized", err)
	}
	if _, err := s.DeleteRecord(ctx, models.KindTask, taskRec.Id, jon); err != nil {
		t.Errorf("superuser DeleteRecord on private task: %v", err)
	}

	// Private project of another user: no exception.
	projRec := mustCreate(t, s, models.KindProject, alice)
	mustSetPrivate(t, s, projRec.Id, alice)

	if _, err := s.SetChecked(ctx, projRec.Id, true, jon); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("superuser SetChecked on private project: err = %v, want ErrNotAuthorized", err)
	}
	if _, err := s.DeleteRecord(ctx, models.KindProject, projRec.Id, jon); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("superuser DeleteRecord on private project: err = %v, want ErrNotAuthorized", err)
	}
}

func TestMissingRecordLooksUnauthorized(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	if _, err := s.DeleteRecord(ctx, models.KindTask, 404, alice); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("delete: err = %v, want ErrNotAuthorized", err)
	}
	if _, err := s.SetChecked(ctx, 404, true, alice); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("set-checked: err = %v, want ErrNotAuthorized", err)
	}
	if _, err := s.SetPrivate(ctx, 404, true, alice); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("set-private: err = %v, want ErrNotAuthorized", err)
	}
}

func TestDeleteRequiresMatchingKind(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	rec := mustCreate(t, s, models.KindTask, alice)

	if _, err := s.DeleteRecord(ctx, models.KindProject, rec.Id, alice); !errors.Is(err, ErrNotAuthorized) {
		t.Errorf("cross-kind delete: err = %v, want ErrNotAuthorized", err)
	}
	if s.Len() != 1 {
		t.Error("record deleted through wrong kind")
	}
}

func TestSetCheckedResolvesBothKinds(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	projRec := mustCreate(t, s, models.KindProject, alice)

	got, err := s.SetChecked(ctx, projRec.Id, true, alice)
	if err != nil {
		t.Fatalf("SetChecked on project: %v", err)
	}
	if got.Kind != models.KindProject || !got.Checked {
		t.Errorf("got %+v, want checked project", got)
	}
}

func TestIdempotentSetIsNoOp(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	rec := mustCreate(t, s, models.KindTask, alice)

	first, err := s.SetChecked(ctx, rec.Id, false, alice)
	if err != nil {
		t.Fatalf("SetChecked: %v", err)
	}
	second, err := s.SetChecked(ctx, rec.Id, false, alice)
	if err != nil {
		t.Fatalf("repeat SetChecked: %v", err)
	}
	if *first != *second {
		t.Errorf("repeated write changed the record: %+v vs %+v", first, second)
	}
}

func TestListVisibleFiltersPrivate(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	pub := mustCreate(t, s, models.KindTask, alice)
	priv := mustCreate(t, s, models.KindTask, alice)
	mustSetPrivate(t, s, priv.Id, alice)

	// Owner sees both, newest first.
	recs, err := s.ListVisible(ctx, models.KindTask, alice.UserId)
	if err != nil {
		t.Fatalf("ListVisible: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("owner sees %d records, want 2", len(recs))
	}
	if recs[0].Id != priv.Id || recs[1].Id != pub.Id {
		t.Errorf("order = [%d %d], want [%d %d]", recs[0].Id, recs[1].Id, priv.Id, pub.Id)
	}

	// Others and anonymous see only the public record.
	for _, viewerId := range []int64{bob.UserId, 0} {
		recs, err := s.ListVisible(ctx, models.KindTask, viewerId)
		if err != nil {
			t.Fatalf("ListVisible(%d): %v", viewerId, err)
		}
		if len(recs) != 1 || recs[0].Id != pub.Id {
			t.Errorf("viewer %d sees %d records, want only the public one", viewerId, len(recs))
		}
	}
}

func TestPrivacyToggleHidesFromOtherViewers(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	rec := mustCreate(t, s, models.KindTask, alice)

	before, _ := s.ListVisible(ctx, models.KindTask, bob.UserId)
	if len(before) != 1 {
		t.Fatalf("bob sees %d records before toggle, want 1", len(before))
	}

	mustSetPrivate(t, s, rec.Id, alice)

	after, _ := s.ListVisible(ctx, models.KindTask, bob.UserId)
	if len(after) != 0 {
		t.Errorf("bob sees %d records after toggle, want 0", len(after))
	}
	owners, _ := s.ListVisible(ctx, models.KindTask, alice.UserId)
	if len(owners) != 1 {
		t.Errorf("alice sees %d records after toggle, want 1", len(owners))
	}
}

func TestCountIncomplete(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	mustCreate(t, s, models.KindTask, alice)
	done := mustCreate(t, s, models.KindTask, alice)
	if _, err := s.SetChecked(ctx, done.Id, true, alice); err != nil {
		t.Fatalf("SetChecked: %v", err)
	}
	hidden := mustCreate(t, s, models.KindTask, alice)
	mustSetPrivate(t, s, hidden.Id, alice)

	// Projects never count.
	mustCreate(t, s, models.KindProject, alice)

	count, err := s.CountIncomplete(ctx, alice.UserId)
	if err != nil {
		t.Fatalf("CountIncomplete: %v", err)
	}
	if count != 2 {
		t.Errorf("owner count = %d, want 2", count)
	}

	count, err = s.CountIncomplete(ctx, bob.UserId)
	if err != nil {
		t.Fatalf("CountIncomplete: %v", err)
	}
	if count != 1 {
		t.Errorf("non-owner count = %d, want 1 (private task hidden)", count)
	}
}
