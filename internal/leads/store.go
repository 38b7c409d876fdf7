package leads

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/whatisvlade/zefirbot/internal/request"
)

// Row is one persisted lead.
type Row struct {
	ID          int64     `db:"id"`
	ChatID      int64     `db:"chat_id"`
	Category    string    `db:"category"`
	DisplayName string    `db:"display_name"`
	Username    string    `db:"username"`
	Staffed     bool      `db:"staffed"`
	CreatedAt   time.Time `db:"created_at"`
}

// Store persists submitted leads in Postgres.
type Store struct {
	db *sqlx.DB
}

// NewStore wraps an open database connection.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Record inserts one lead. Implements the request pipeline journal.
func (s *Store) Record(ctx context.Context, lead request.Lead) error {
	const q = `
		INSERT INTO leads (chat_id, category, display_name, username, staffed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := s.db.ExecContext(ctx, q,
		lead.ChatID, lead.Category, lead.DisplayName, lead.Username, lead.Staffed, lead.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// Recent returns the latest leads, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Row, error) {
	if limit <= 0 {
		limit = 10
	}
	const q = `
		SELECT id, chat_id, category, display_name, username, staffed, created_at
		FROM leads
		ORDER BY created_at DESC, id DESC
		LIMIT $1`
	var rows []Row
	if err := s.db.SelectContext(ctx, &rows, q, limit); err != nil {
		return nil, fmt.Errorf("select leads: %w", err)
	}
	return rows, nil
}
