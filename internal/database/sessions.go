package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"streamvault/models"
)

// SessionRepository persists bearer-token sessions.
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a session repository backed by db.
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create stores a session token for the user with the given lifetime.
func (r *SessionRepository) Create(ctx context.Context, token string, userID int64, ttl time.Duration) error {
	now := time.Now()
	_, err := execWithRetry(ctx, r.db,
		`INSERT INTO sessions (token, user_id, created_at, expires_at) VALUES (?, ?, ?, ?)`,
		token, userID, formatTime(now), formatTime(now.Add(ttl)),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// Get fetches a session by token. Returns ErrNotFound when absent.
func (r *SessionRepository) Get(ctx context.Context, token string) (*models.Session, error) {
	var (
		s                    models.Session
		createdAt, expiresAt string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT token, user_id, created_at, expires_at FROM sessions WHERE token = ?`, token,
	).Scan(&s.Token, &s.UserID, &createdAt, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query session: %w", err)
	}
	s.CreatedAt = parseTime(createdAt)
	s.ExpiresAt = parseTime(expiresAt)
	return &s, nil
}

// Delete removes a session token. Deleting an unknown token is not an error.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	if _, err := execWithRetry(ctx, r.db, `DELETE FROM sessions WHERE token = ?`, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
