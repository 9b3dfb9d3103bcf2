package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"streamvault/models"
)

// HistoryRepository persists the append-only viewing history log.
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository creates a history repository backed by db.
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Record appends one play event. Returns ErrNotFound when the content does
// not exist.
func (r *HistoryRepository) Record(ctx context.Context, userID, contentID int64) error {
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := rowExists(ctx, tx, `SELECT COUNT(*) FROM content WHERE id = ?`, contentID); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO viewing_history (user_id, content_id, created_at) VALUES (?, ?, ?)`,
			userID, contentID, formatTime(time.Now()),
		)
		if err != nil {
			return fmt.Errorf("insert history entry: %w", err)
		}
		return nil
	})
}

// ListByUser returns a user's viewing history, newest first, with the
// content title joined in.
func (r *HistoryRepository) ListByUser(ctx context.Context, userID int64) ([]models.ViewingHistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT h.id, h.user_id, h.content_id, c.title, h.created_at
         FROM viewing_history h
         JOIN content c ON c.id = h.content_id
         WHERE h.user_id = ?
         ORDER BY h.id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	entries := make([]models.ViewingHistoryEntry, 0)
	for rows.Next() {
		var (
			e         models.ViewingHistoryEntry
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.ContentID, &e.Title, &createdAt); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return entries, nil
}
