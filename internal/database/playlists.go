package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"streamvault/models"
)

// PlaylistRepository persists playlists and their track memberships.
type PlaylistRepository struct {
	db *sql.DB
}

// NewPlaylistRepository creates a playlist repository backed by db.
func NewPlaylistRepository(db *sql.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

// Create inserts a playlist for the given owner and returns its assigned ID.
func (r *PlaylistRepository) Create(ctx context.Context, userID int64, name string) (int64, error) {
	res, err := execWithRetry(ctx, r.db,
		`INSERT INTO playlists (name, user_id, created_at) VALUES (?, ?, ?)`,
		name, userID, formatTime(time.Now()),
	)
	if err != nil {
		return 0, fmt.Errorf("insert playlist: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// GetByID fetches a playlist. Returns ErrNotFound when absent.
func (r *PlaylistRepository) GetByID(ctx context.Context, id int64) (*models.Playlist, error) {
	var (
		p         models.Playlist
		createdAt string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, user_id, created_at FROM playlists WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.UserID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query playlist: %w", err)
	}
	p.CreatedAt = parseTime(createdAt)
	return &p, nil
}

// ListByUser returns all playlists owned by userID in creation order.
func (r *PlaylistRepository) ListByUser(ctx context.Context, userID int64) ([]models.Playlist, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, user_id, created_at FROM playlists WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query playlists: %w", err)
	}
	defer rows.Close()

	playlists := make([]models.Playlist, 0)
	for rows.Next() {
		var (
			p         models.Playlist
			createdAt string
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.UserID, &createdAt); err != nil {
			return nil, fmt.Errorf("scan playlist: %w", err)
		}
		p.CreatedAt = parseTime(createdAt)
		playlists = append(playlists, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlists: %w", err)
	}
	return playlists, nil
}

// AddTrack inserts a track membership. Returns ErrNotFound when the playlist
// or content does not exist and ErrConflict when the content is already a
// member of the playlist.
func (r *PlaylistRepository) AddTrack(ctx context.Context, playlistID, contentID int64, position int) error {
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := rowExists(ctx, tx, `SELECT COUNT(*) FROM playlists WHERE id = ?`, playlistID); err != nil {
			return err
		}
		if err := rowExists(ctx, tx, `SELECT COUNT(*) FROM content WHERE id = ?`, contentID); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO playlist_tracks (playlist_id, content_id, position) VALUES (?, ?, ?)`,
			playlistID, contentID, position,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrConflict
			}
			return fmt.Errorf("insert track: %w", err)
		}
		return nil
	})
}

// RemoveTrack deletes one track membership matching the content within the
// playlist. The lookup is keyed by content, not by track ID; when duplicates
// exist only the lowest-ID match is removed. Returns ErrNotFound when the
// playlist is unknown or no track matches.
func (r *PlaylistRepository) RemoveTrack(ctx context.Context, playlistID, contentID int64) error {
	return inTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := rowExists(ctx, tx, `SELECT COUNT(*) FROM playlists WHERE id = ?`, playlistID); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx,
			`DELETE FROM playlist_tracks WHERE id = (
                SELECT MIN(id) FROM playlist_tracks WHERE playlist_id = ? AND content_id = ?
            )`,
			playlistID, contentID,
		)
		if err != nil {
			return fmt.Errorf("delete track: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if affected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// ListTracks returns a playlist's tracks ordered by position.
func (r *PlaylistRepository) ListTracks(ctx context.Context, playlistID int64) ([]models.PlaylistTrack, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, playlist_id, content_id, position FROM playlist_tracks
         WHERE playlist_id = ? ORDER BY position, id`, playlistID)
	if err != nil {
		return nil, fmt.Errorf("query tracks: %w", err)
	}
	defer rows.Close()

	tracks := make([]models.PlaylistTrack, 0)
	for rows.Next() {
		var t models.PlaylistTrack
		if err := rows.Scan(&t.ID, &t.PlaylistID, &t.ContentID, &t.Position); err != nil {
			return nil, fmt.Errorf("scan track: %w", err)
		}
		tracks = append(tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tracks: %w", err)
	}
	return tracks, nil
}

func rowExists(ctx context.Context, tx *sql.Tx, countQuery string, arg any) error {
	var count int64
	if err := tx.QueryRowContext(ctx, countQuery, arg).Scan(&count); err != nil {
		return fmt.Errorf("existence check: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
