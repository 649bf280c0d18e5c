package watch

import (
	"testing"

	"tracker-grpc/internal/models"
)

func task(id, ownerId int64, private bool) *models.Record {
	return &models.Record{Id: id, Kind: models.KindTask, Label: "x", OwnerId: ownerId, Private: private}
}

func mustReceive(t *testing.T, sub *Subscriber) Event {
	t.Helper()
	select {
	case ev, ok := <-sub.Events():
		if !ok {
			t.Fatal("subscriber channel closed")
		}
		return ev
	default:
		t.Fatal("no event delivered")
	}
	return Event{}
}

func mustNotReceive(t *testing.T, sub *Subscriber) {
	t.Helper()
	select {
	case ev := <-sub.Events():
		t.Fatalf("unexpected event: type=%d id=%d", ev.Type, ev.Record.Id)
	default:
	}
}

func TestPublicRecordReachesEveryone(t *testing.T) {
	h := NewHub()
	ownerSub := h.Subscribe(models.KindTask, 1)
	otherSub := h.Subscribe(models.KindTask, 2)
	anonSub := h.Subscribe(models.KindTask, 0)

	h.Publish(Added, task(10, 1, false))

	for _, sub := range []*Subscriber{ownerSub, otherSub, anonSub} {
		ev := mustReceive(t, sub)
		if ev.Type != Added || ev.Record.Id != 10 {
			t.Errorf("got type=%d id=%d, want Added id=10", ev.Type, ev.Record.Id)
		}
	}
}

func TestPrivateRecordReachesOnlyOwner(t *testing.T) {
	h := NewHub()
	ownerSub := h.Subscribe(models.KindTask, 1)
	otherSub := h.Subscribe(models.KindTask, 2)
	anonSub := h.Subscribe(models.KindTask, 0)

	h.Publish(Added, task(10, 1, true))

	ev := mustReceive(t, ownerSub)
	if ev.Type != Added || ev.Record.Id != 10 {
		t.Errorf("owner got type=%d id=%d, want Added id=10", ev.Type, ev.Record.Id)
	}
	mustNotReceive(t, otherSub)
	mustNotReceive(t, anonSub)
}

func TestPrivacyToggleRemovesFromOtherViewers(t *testing.T) {
	h := NewHub()
	ownerSub := h.Subscribe(models.KindTask, 1)
	otherSub := h.Subscribe(models.KindTask, 2)

	h.Publish(Added, task(10, 1, false))
	mustReceive(t, ownerSub)
	mustReceive(t, otherSub)

	// Record turns private: owner keeps a full Changed event, everyone
	// else sees it leave as an id-only tombstone.
	h.Publish(Changed, task(10, 1, true))

	ev := mustReceive(t, ownerSub)
	if ev.Type != Changed || ev.Record.Label != "x" {
		t.Errorf("owner got type=%d label=%q, want Changed with full record", ev.Type, ev.Record.Label)
	}

	ev = mustReceive(t, otherSub)
	if ev.Type != Removed {
		t.Fatalf("non-owner got type=%d, want Removed", ev.Type)
	}
	if ev.Record.Id != 10 {
		t.Errorf("tombstone id = %d, want 10", ev.Record.Id)
	}
	if ev.Record.Label != "" || ev.Record.OwnerId != 0 {
		t.Errorf("tombstone leaked fields: %+v", ev.Record)
	}
}

func TestPrivacyToggleAddsForOtherViewers(t *testing.T) {
	h := NewHub()
	otherSub := h.Subscribe(models.KindTask, 2)

	// Record turns public: it enters the non-owner's view for the first
	// time, so it must arrive as Added with the full record, not Changed.
	h.Publish(Changed, task(10, 1, false))

	ev := mustReceive(t, otherSub)
	if ev.Type != Added {
		t.Fatalf("non-owner got type=%d, want Added", ev.Type)
	}
	if ev.Record.Id != 10 || ev.Record.Label != "x" {
		t.Errorf("got id=%d label=%q, want full record id=10", ev.Record.Id, ev.Record.Label)
	}

	// Once held, later updates arrive as ordinary Changed events.
	h.Publish(Changed, task(10, 1, false))
	ev = mustReceive(t, otherSub)
	if ev.Type != Changed {
		t.Errorf("second update got type=%d, want Changed", ev.Type)
	}
}

func TestRemovedIsTombstoneForEveryone(t *testing.T) {
	h := NewHub()
	ownerSub := h.Subscribe(models.KindTask, 1)
	otherSub := h.Subscribe(models.KindTask, 2)

	h.Publish(Removed, task(10, 1, true))

	for _, sub := range []*Subscriber{ownerSub, otherSub} {
		ev := mustReceive(t, sub)
		if ev.Type != Removed || ev.Record.Id != 10 {
			t.Errorf("got type=%d id=%d, want Removed id=10", ev.Type, ev.Record.Id)
		}
		if ev.Record.Label != "" {
			t.Errorf("tombstone leaked label %q", ev.Record.Label)
		}
	}
}

func TestKindsAreIndependent(t *testing.T) {
	h := NewHub()
	taskSub := h.Subscribe(models.KindTask, 1)
	projectSub := h.Subscribe(models.KindProject, 1)

	h.Publish(Added, task(10, 1, false))

	mustReceive(t, taskSub)
	mustNotReceive(t, projectSub)
}

func TestEventsArriveInPublishOrder(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe(models.KindTask, 1)

	h.Publish(Added, task(10, 1, false))
	h.Publish(Changed, task(10, 1, false))
	h.Publish(Removed, task(10, 1, false))

	wantTypes := []EventType{Added, Changed, Removed}
	for i, want := range wantTypes {
		ev := mustReceive(t, sub)
		if ev.Type != want {
			t.Errorf("event %d: got type=%d, want %d", i, ev.Type, want)
		}
	}
}

func TestLaggingSubscriberIsDropped(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe(models.KindTask, 1)

	for i := 0; i < subscriberBuffer+1; i++ {
		h.Publish(Added, task(int64(i), 1, false))
	}

	// Drain: the buffer's worth of events, then a closed channel.
	received := 0
	for range sub.Events() {
		received++
	}
	if received != subscriberBuffer {
		t.Errorf("received %d events before drop, want %d", received, subscriberBuffer)
	}

	// Dropped subscriber no longer receives.
	h.Publish(Added, task(99, 1, false))
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe(models.KindTask, 1)
	h.Unsubscribe(sub)

	if _, ok := <-sub.Events(); ok {
		t.Error("channel still open after Unsubscribe")
	}

	// Double unsubscribe must not panic.
	h.Unsubscribe(sub)
}

func TestCloseDropsAllSubscribers(t *testing.T) {
	h := NewHub()
	a := h.Subscribe(models.KindTask, 1)
	b := h.Subscribe(models.KindProject, 2)

	h.Close()

	if _, ok := <-a.Events(); ok {
		t.Error("task subscriber still open after Close")
	}
	if _, ok := <-b.Events(); ok {
		t.Error("project subscriber still open after Close")
	}

	h.Publish(Added, task(10, 1, false))
}
