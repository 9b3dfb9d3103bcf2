// Package playlists implements CRUD over playlists and their ordered track
// membership.
package playlists

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"streamvault/internal/database"
	"streamvault/models"
)

var (
	// ErrEmptyName indicates a playlist create request with no name.
	ErrEmptyName = errors.New("playlists: name is required")
	// ErrPlaylistNotFound indicates the playlist does not exist.
	ErrPlaylistNotFound = errors.New("playlists: playlist not found")
	// ErrContentNotFound indicates the content item does not exist.
	ErrContentNotFound = errors.New("playlists: content not found")
	// ErrTrackNotFound indicates no track matches the content in the playlist.
	ErrTrackNotFound = errors.New("playlists: track not found in playlist")
	// ErrDuplicateTrack indicates the content is already in the playlist.
	ErrDuplicateTrack = errors.New("playlists: content already in playlist")
)

// Service exposes playlist operations.
type Service struct {
	playlists *database.PlaylistRepository
}

// NewService creates a playlists service over the playlist repository.
func NewService(playlists *database.PlaylistRepository) *Service {
	return &Service{playlists: playlists}
}

// ListForUser returns the playlists owned by userID.
func (s *Service) ListForUser(ctx context.Context, userID int64) ([]models.Playlist, error) {
	return s.playlists.ListByUser(ctx, userID)
}

// Create makes a new playlist for the owner and returns its assigned ID.
func (s *Service) Create(ctx context.Context, userID int64, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrEmptyName
	}

	id, err := s.playlists.Create(ctx, userID, name)
	if err != nil {
		return 0, fmt.Errorf("create playlist: %w", err)
	}
	return id, nil
}

// AddTrack inserts a track membership at the caller-supplied position.
// Positions need not be contiguous; concurrent adds may interleave position
// assignment, which is acceptable since positions are caller-supplied.
func (s *Service) AddTrack(ctx context.Context, playlistID, contentID int64, position int) error {
	// Distinguish which side of the membership is missing for the caller.
	if _, err := s.playlists.GetByID(ctx, playlistID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrPlaylistNotFound
		}
		return fmt.Errorf("lookup playlist: %w", err)
	}

	err := s.playlists.AddTrack(ctx, playlistID, contentID, position)
	switch {
	case errors.Is(err, database.ErrNotFound):
		return ErrContentNotFound
	case errors.Is(err, database.ErrConflict):
		return ErrDuplicateTrack
	case err != nil:
		return fmt.Errorf("add track: %w", err)
	}
	return nil
}

// RemoveTrack deletes one track membership matching the content. When the
// same content appears at multiple positions only the lowest-ID match is
// removed.
func (s *Service) RemoveTrack(ctx context.Context, playlistID, contentID int64) error {
	if _, err := s.playlists.GetByID(ctx, playlistID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrPlaylistNotFound
		}
		return fmt.Errorf("lookup playlist: %w", err)
	}

	err := s.playlists.RemoveTrack(ctx, playlistID, contentID)
	if errors.Is(err, database.ErrNotFound) {
		return ErrTrackNotFound
	}
	if err != nil {
		return fmt.Errorf("remove track: %w", err)
	}
	return nil
}

// Tracks returns a playlist's tracks ordered by position.
func (s *Service) Tracks(ctx context.Context, playlistID int64) ([]models.PlaylistTrack, error) {
	if _, err := s.playlists.GetByID(ctx, playlistID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("lookup playlist: %w", err)
	}
	return s.playlists.ListTracks(ctx, playlistID)
}
