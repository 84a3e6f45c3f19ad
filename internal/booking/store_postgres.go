package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"railbook/internal/booking/domain"
	"railbook/pkg/sentinel"
)

// PostgresStore persists session drafts in PostgreSQL. Use it when drafts
// must survive a Redis flush or be queryable for support tooling.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore constructs a PostgreSQL-backed draft store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const draftSchema = `
CREATE TABLE IF NOT EXISTS booking_drafts (
	session_id TEXT PRIMARY KEY,
	payload    JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Migrate creates the drafts table when it does not exist yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, draftSchema); err != nil {
		return fmt.Errorf("migrate booking_drafts: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context, sessionID string) (domain.Draft, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM booking_drafts WHERE session_id = $1`,
		sessionID,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Draft{}, sentinel.ErrNotFound
	}
	if err != nil {
		return domain.Draft{}, fmt.Errorf("load draft: %w", err)
	}
	var draft domain.Draft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return domain.Draft{}, fmt.Errorf("decode draft: %w", err)
	}
	return draft, nil
}

func (s *PostgresStore) Save(ctx context.Context, sessionID string, draft domain.Draft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO booking_drafts (session_id, payload, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (session_id) DO UPDATE SET payload = $2, updated_at = now()`,
		sessionID, payload,
	)
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}
