package models

import "time"

// ViewingHistoryEntry records one play event. Entries are append-only and
// never mutated or deleted.
type ViewingHistoryEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ContentID int64     `json:"content_id"`
	Title     string    `json:"title,omitempty"`
	CreatedAt time.Time `json:"timestamp"`
}
