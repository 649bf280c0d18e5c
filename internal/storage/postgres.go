package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"tracker-grpc/internal/authz"
	"tracker-grpc/internal/models"

	_ "github.com/lib/pq"
)

const recordColumns = "id, kind, label, link, owner_id, owner_name, created_at, checked, private"

type PostgresStorage struct {
	db        *sql.DB
	superuser string
	log       *slog.Logger
}

func NewPostgresStorage(host, port, user, password, dbname, superuser string, log *slog.Logger) (*PostgresStorage, error) {
	psqlInfo := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname,
	)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return nil, fmt.Errorf("cannot open db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("cannot connect to db: %w", err)
	}

	s := &PostgresStorage{db: db, superuser: superuser, log: log}

	if err := s.init(); err != nil {
		return nil, fmt.Errorf("cannot initialize db schema: %w", err)
	}

	return s, nil
}

func (s *PostgresStorage) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		id SERIAL PRIMARY KEY,
		kind TEXT NOT NULL,
		label TEXT NOT NULL,
		link TEXT NOT NULL,
		owner_id BIGINT NOT NULL,
		owner_name TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		checked BOOLEAN NOT NULL DEFAULT FALSE,
		private BOOLEAN NOT NULL DEFAULT FALSE
	);`
	_, err := s.db.Exec(schema)
	return err
}

func (s *PostgresStorage) CreateRecord(ctx context.Context, kind models.Kind, label, link string, actor *authz.Actor) (*models.Record, error) {
	if actor == nil {
		return nil, ErrNotAuthorized
	}

	rec := &models.Record{
		Kind:      kind,
		Label:     label,
		Link:      link,
		OwnerId:   actor.UserId,
		OwnerName: actor.Username,
	}

	query := `
	INSERT INTO records (kind, label, link, owner_id, owner_name)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, created_at`
	err := s.db.QueryRowContext(ctx, query, kind, label, link, actor.UserId, actor.Username).
		Scan(&rec.Id, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// DeleteRecord removes the record iff the guard holds: the record is public,
// or the actor owns it, or (tasks only) the actor is the superuser. The
// guard is evaluated inside the DELETE itself so the check and the write
// cannot race against a concurrent privacy or ownership change.
func (s *PostgresStorage) DeleteRecord(ctx context.Context, kind models.Kind, id int64, actor *authz.Actor) (*models.Record, error) {
	if actor == nil {
		return nil, ErrNotAuthorized
	}

	isSuper := kind == models.KindTask && authz.IsSuperuser(actor.Username, s.superuser)

	query := `
	DELETE FROM records
	WHERE id = $1 AND kind = $2 AND (private = FALSE OR owner_id = $3 OR $4)
	RETURNING ` + recordColumns
	return s.scanRecord(s.db.QueryRowContext(ctx, query, id, kind, actor.UserId, isSuper))
}

// SetChecked resolves the id against both kinds. The superuser clause only
// fires when the matched record is a task.
func (s *PostgresStorage) SetChecked(ctx context.Context, id int64, checked bool, actor *authz.Actor) (*models.Record, error) {
	if actor == nil {
		return nil, ErrNotAuthorized
	}

	isSuper := authz.IsSuperuser(actor.Username, s.superuser)

	query := `
	UPDATE records SET checked = $2
	WHERE id = $1 AND (private = FALSE OR owner_id = $3 OR (kind = 'task' AND $4))
	RETURNING ` + recordColumns
	return s.scanRecord(s.db.QueryRowContext(ctx, query, id, checked, actor.UserId, isSuper))
}

func (s *PostgresStorage) SetPrivate(ctx context.Context, id int64, private bool, actor *authz.Actor) (*models.Record, error) {
	if actor == nil {
		return nil, ErrNotAuthorized
	}

	query := `
	UPDATE records SET private = $2
	WHERE id = $1 AND owner_id = $3
	RETURNING ` + recordColumns
	return s.scanRecord(s.db.QueryRowContext(ctx, query, id, private, actor.UserId))
}

// ListVisible is the subscription-boundary visibility filter: public
// records plus the viewer's own. viewerId 0 means anonymous.
func (s *PostgresStorage) ListVisible(ctx context.Context, kind models.Kind, viewerId int64) ([]*models.Record, error) {
	query := `
	SELECT ` + recordColumns + `
	FROM records
	WHERE kind = $1 AND (private = FALSE OR owner_id = $2)
	ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, kind, viewerId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (s *PostgresStorage) CountIncomplete(ctx context.Context, viewerId int64) (int64, error) {
	query := `
	SELECT COUNT(*) FROM records
	WHERE kind = 'task' AND checked = FALSE AND (private = FALSE OR owner_id = $1)`

	var count int64
	if err := s.db.QueryRowContext(ctx, query, viewerId).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// AllRecords feeds the search index backfill on startup.
func (s *PostgresStorage) AllRecords(ctx context.Context) ([]*models.Record, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+recordColumns+" FROM records")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

func (s *PostgresStorage) scanRecord(row *sql.Row) (*models.Record, error) {
	var rec models.Record
	err := row.Scan(
		&rec.Id, &rec.Kind, &rec.Label, &rec.Link,
		&rec.OwnerId, &rec.OwnerName, &rec.CreatedAt,
		&rec.Checked, &rec.Private,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotAuthorized
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func scanRecords(rows *sql.Rows) ([]*models.Record, error) {
	var records []*models.Record
	for rows.Next() {
		var rec models.Record
		err := rows.Scan(
			&rec.Id, &rec.Kind, &rec.Label, &rec.Link,
			&rec.OwnerId, &rec.OwnerName, &rec.CreatedAt,
			&rec.Checked, &rec.Private,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
