// Package watch fans mutation events out to live subscribers. The hub is
// the push half of the subscription surface: the service publishes one
// event per applied store write, and every subscriber of the matching kind
// receives it filtered through the same visibility rule the snapshot query
// uses.
package watch

import (
	"sync"

	"tracker-grpc/internal/authz"
	"tracker-grpc/internal/models"
)

type EventType int

const (
	Added EventType = iota + 1
	Changed
	Removed
)

// Event is one change pushed to a subscriber. On Removed the record carries
// only its id and kind: a record leaving a viewer's visible set must not
// leak its fields.
type Event struct {
	Type   EventType
	Record *models.Record
}

// subscriber buffer. A subscriber that falls this far behind is dropped and
// must re-subscribe for a fresh snapshot.
const subscriberBuffer = 64

type Subscriber struct {
	kind     models.Kind
	viewerId int64
	ch       chan Event
	closed   bool

	// record ids this subscriber has received through the hub, used to
	// type a record entering the visible set as Added rather than
	// Changed. Guarded by the hub mutex.
	visible map[int64]struct{}
}

// Events delivers this subscriber's feed. The channel is closed when the
// subscriber is dropped for falling behind or the hub shuts down.
func (s *Subscriber) Events() <-chan Event {
	return s.ch
}

type Hub struct {
	mu   sync.Mutex
	subs map[*Subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscriber]struct{})}
}

func (h *Hub) Subscribe(kind models.Kind, viewerId int64) *Subscriber {
	sub := &Subscriber{
		kind:     kind,
		viewerId: viewerId,
		ch:       make(chan Event, subscriberBuffer),
		visible:  make(map[int64]struct{}),
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	return sub
}

func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(sub)
}

// Publish routes one applied mutation to every subscriber of the record's
// kind. A record the subscriber may view arrives as Added the first time the
// hub shows it to them and as Changed afterwards, so a record toggled public
// enters a non-owner's view as Added. A record the subscriber may not view
// (private and not theirs) arrives as a Removed tombstone on Changed so a
// record toggled private disappears, and not at all on Added. Removed goes
// to everyone as a tombstone; subscribers ignore ids they never held.
//
// Snapshot rows are sent by the stream handler, not the hub, so the first
// live Changed on a snapshot row is also typed Added. Clients treat Added
// as an upsert, which makes that safe.
func (h *Hub) Publish(typ EventType, rec *models.Record) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs {
		if sub.kind != rec.Kind {
			continue
		}

		var ev Event
		switch typ {
		case Added:
			if !authz.CanView(rec, sub.viewerId) {
				continue
			}
			sub.visible[rec.Id] = struct{}{}
			ev = Event{Type: Added, Record: rec}
		case Changed:
			if !authz.CanView(rec, sub.viewerId) {
				delete(sub.visible, rec.Id)
				ev = Event{Type: Removed, Record: tombstone(rec)}
				break
			}
			if _, seen := sub.visible[rec.Id]; seen {
				ev = Event{Type: Changed, Record: rec}
			} else {
				sub.visible[rec.Id] = struct{}{}
				ev = Event{Type: Added, Record: rec}
			}
		case Removed:
			delete(sub.visible, rec.Id)
			ev = Event{Type: Removed, Record: tombstone(rec)}
		}

		select {
		case sub.ch <- ev:
		default:
			// Too far behind to ever catch up consistently.
			h.dropLocked(sub)
		}
	}
}

// Close drops every subscriber. Publish after Close is a no-op.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subs {
		h.dropLocked(sub)
	}
}

func (h *Hub) dropLocked(sub *Subscriber) {
	if sub.closed {
		return
	}
	sub.closed = true
	delete(h.subs, sub)
	close(sub.ch)
}

func tombstone(r *models.Record) *models.Record {
	return &models.Record{Id: r.Id, Kind: r.Kind}
}
