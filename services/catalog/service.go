// Package catalog provides read and search operations over the content
// catalog, plus ingestion of new items.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"streamvault/internal/database"
	"streamvault/models"
)

var (
	// ErrContentNotFound indicates no catalog item exists with the given ID.
	ErrContentNotFound = errors.New("catalog: content not found")
	// ErrInvalidContent indicates a create request failed validation.
	ErrInvalidContent = errors.New("catalog: title is required and rating must be finite")
)

// Service exposes catalog operations.
type Service struct {
	content *database.ContentRepository
}

// NewService creates a catalog service over the content repository.
func NewService(content *database.ContentRepository) *Service {
	return &Service{content: content}
}

// List returns every catalog item in insertion order.
func (s *Service) List(ctx context.Context) ([]models.Content, error) {
	return s.content.List(ctx)
}

// Get returns a single catalog item by ID.
func (s *Service) Get(ctx context.Context, id int64) (*models.Content, error) {
	c, err := s.content.GetByID(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrContentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}
	return c, nil
}

// Search returns catalog items matching every supplied filter. Omitted
// filters are not applied; no matches yields an empty slice, not an error.
func (s *Service) Search(ctx context.Context, filter models.SearchFilter) ([]models.Content, error) {
	return s.content.Search(ctx, filter)
}

// Create ingests a new catalog item and returns its assigned ID.
func (s *Service) Create(ctx context.Context, c models.Content) (int64, error) {
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		return 0, ErrInvalidContent
	}
	if math.IsNaN(c.AverageRating) || math.IsInf(c.AverageRating, 0) {
		return 0, ErrInvalidContent
	}

	id, err := s.content.Create(ctx, c)
	if err != nil {
		return 0, fmt.Errorf("create content: %w", err)
	}
	return id, nil
}
