// Package history records and lists play events.
package history

import (
	"context"
	"errors"
	"fmt"

	"streamvault/internal/database"
	"streamvault/models"
)

// ErrContentNotFound indicates a play was recorded against an unknown item.
var ErrContentNotFound = errors.New("history: content not found")

// Service appends to and reads the viewing history log.
type Service struct {
	history *database.HistoryRepository
}

// NewService creates a history service over the history repository.
func NewService(history *database.HistoryRepository) *Service {
	return &Service{history: history}
}

// RecordPlay appends one play event for the user against the content item.
func (s *Service) RecordPlay(ctx context.Context, userID, contentID int64) error {
	err := s.history.Record(ctx, userID, contentID)
	if errors.Is(err, database.ErrNotFound) {
		return ErrContentNotFound
	}
	if err != nil {
		return fmt.Errorf("record play: %w", err)
	}
	return nil
}

// ListForUser returns the user's play events, newest first.
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]models.ViewingHistoryEntry, error) {
	return s.history.ListByUser(ctx, userID)
}
