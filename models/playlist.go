package models

import "time"

// Playlist is a named, user-owned ordered collection of content references.
type Playlist struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PlaylistTrack links a playlist to one content item at a position. Positions
// define intra-playlist order and need not be contiguous.
type PlaylistTrack struct {
	ID         int64 `json:"id"`
	PlaylistID int64 `json:"playlist_id"`
	ContentID  int64 `json:"content_id"`
	Position   int   `json:"position"`
}
