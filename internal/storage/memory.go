package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"tracker-grpc/internal/authz"
	"tracker-grpc/internal/models"
)

// MemoryStorage implements the same store contract as PostgresStorage
// against a process-local map. It backs tests and the "memory" db driver
// used for local development. Each mutation evaluates its guard and applies
// the write under one lock, matching the conditional-write semantics of the
// SQL store.
type MemoryStorage struct {
	mu        sync.Mutex
	records   map[int64]*models.Record
	nextId    int64
	superuser string
}

func NewMemoryStorage(superuser string) *MemoryStorage {
	return &MemoryStorage{
		records:   make(map[int64]*models.Record),
		nextId:    1,
		superuser: superuser,
	}
}

func (s *MemoryStorage) CreateRecord(ctx context.Context, kind models.Kind, label, link string, actor *authz.Actor) (*models.Record, error) {
	if actor == nil {
		return nil, ErrNotAuthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &models.Record{
		Id:        s.nextId,
		Kind:      kind,
		Label:     label,
		Link:      link,
		OwnerId:   actor.UserId,
		OwnerName: actor.Username,
		CreatedAt: time.Now(),
	}
	s.nextId++
	s.records[rec.Id] = rec

	return copyRecord(rec), nil
}

func (s *MemoryStorage) DeleteRecord(ctx context.Context, kind models.Kind, id int64, actor *authz.Actor) (*models.Record, error) {
	if actor == nil {
		return nil, ErrNotAuthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok || rec.Kind != kind || !authz.CanDelete(rec, actor, s.superuser) {
		return nil, ErrNotAuthorized
	}

	delete(s.records, id)
	return copyRecord(rec), nil
}

func (s *MemoryStorage) SetChecked(ctx context.Context, id int64, checked bool, actor *authz.Actor) (*models.Record, error) {
	if actor == nil {
		return nil, ErrNotAuthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok || !authz.CanSetChecked(rec, actor, s.superuser) {
		return nil, ErrNotAuthorized
	}

	rec.Checked = checked
	return copyRecord(rec), nil
}

func (s *MemoryStorage) SetPrivate(ctx context.Context, id int64, private bool, actor *authz.Actor) (*models.Record, error) {
	if actor == nil {
		return nil, ErrNotAuthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok || !authz.CanSetPrivate(rec, actor) {
		return nil, ErrNotAuthorized
	}

	rec.Private = private
	return copyRecord(rec), nil
}

func (s *MemoryStorage) ListVisible(ctx context.Context, kind models.Kind, viewerId int64) ([]*models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var records []*models.Record
	for _, rec := range s.records {
		if rec.Kind == kind && authz.CanView(rec, viewerId) {
			records = append(records, copyRecord(rec))
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if !records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].CreatedAt.After(records[j].CreatedAt)
		}
		return records[i].Id > records[j].Id
	})

	return records, nil
}

func (s *MemoryStorage) CountIncomplete(ctx context.Context, viewerId int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, rec := range s.records {
		if rec.Kind == models.KindTask && !rec.Checked && authz.CanView(rec, viewerId) {
			count++
		}
	}
	return count, nil
}

func (s *MemoryStorage) AllRecords(ctx context.Context) ([]*models.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]*models.Record, 0, len(s.records))
	for _, rec := range s.records {
		records = append(records, copyRecord(rec))
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Id < records[j].Id })
	return records, nil
}

// Len reports the number of stored records, all kinds included.
func (s *MemoryStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func copyRecord(r *models.Record) *models.Record {
	c := *r
	return &c
}
