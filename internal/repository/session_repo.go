package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type SessionSQLite struct {
	db *sql.DB
}

func NewSessionSQLite(db *sql.DB) *SessionSQLite {
	return &SessionSQLite{db: db}
}

// Ensure implementation of SessionRepo interface at compile time.
var _ SessionRepo = (*SessionSQLite)(nil)

const (
	sessionRowID = 1

	upsertSessionSQL = `
		INSERT INTO session (id, token, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			token=excluded.token,
			updated_at=excluded.updated_at`
	selectSessionSQL = `SELECT token FROM session WHERE id = ?`
	deleteSessionSQL = `DELETE FROM session WHERE id = ?`
)

// Load returns the stored session token, or "" when no session is persisted.
func (r *SessionSQLite) Load(ctx context.Context) (string, error) {
	var token string
	err := r.db.QueryRowContext(ctx, selectSessionSQL, sessionRowID).Scan(&token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("select session: %w", err)
	}
	return token, nil
}

// Save overwrites the persisted session token.
func (r *SessionSQLite) Save(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, upsertSessionSQL,
		sessionRowID,
		token,
		time.Now().UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Deleting an absent row is not an error.
func (r *SessionSQLite) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteSessionSQL, sessionRowID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
