package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"streamvault/models"
	"streamvault/services/playlists"
)

// PlaylistsHandler handles playlist management endpoints.
type PlaylistsHandler struct {
	playlistsService *playlists.Service
}

// NewPlaylistsHandler creates a new playlists handler.
func NewPlaylistsHandler(playlistsService *playlists.Service) *PlaylistsHandler {
	return &PlaylistsHandler{playlistsService: playlistsService}
}

// PlaylistResponse is the JSON response for a playlist.
type PlaylistResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

func playlistResponse(p models.Playlist) PlaylistResponse {
	return PlaylistResponse{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

// List returns the authenticated user's playlists.
// GET /playlists
func (h *PlaylistsHandler) List(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	if user == nil {
		jsonError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := h.playlistsService.ListForUser(r.Context(), user.ID)
	if err != nil {
		jsonError(w, "Failed to list playlists", http.StatusInternalServerError)
		return
	}

	out := make([]PlaylistResponse, 0, len(items))
	for _, p := range items {
		out = append(out, playlistResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create makes a new playlist owned by the authenticated user.
// POST /playlists
func (h *PlaylistsHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	if user == nil {
		jsonError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid JSON data", http.StatusBadRequest)
		return
	}

	id, err := h.playlistsService.Create(r.Context(), user.ID, req.Name)
	if errors.Is(err, playlists.ErrEmptyName) {
		jsonError(w, "Playlist name is required", http.StatusBadRequest)
		return
	}
	if err != nil {
		jsonError(w, "Failed to create playlist", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Playlist created successfully",
		"id":      id,
	})
}

// AddTrack inserts a content reference into a playlist.
// POST /playlists/{playlistId}/tracks
func (h *PlaylistsHandler) AddTrack(w http.ResponseWriter, r *http.Request) {
	playlistID, err := strconv.ParseInt(mux.Vars(r)["playlistId"], 10, 64)
	if err != nil {
		jsonError(w, "Playlist not found", http.StatusNotFound)
		return
	}

	var req struct {
		ContentID int64 `json:"content_id"`
		Position  int   `json:"position"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid JSON data", http.StatusBadRequest)
		return
	}

	err = h.playlistsService.AddTrack(r.Context(), playlistID, req.ContentID, req.Position)
	switch {
	case errors.Is(err, playlists.ErrPlaylistNotFound):
		jsonError(w, "Playlist not found", http.StatusNotFound)
		return
	case errors.Is(err, playlists.ErrContentNotFound):
		jsonError(w, "Content not found", http.StatusNotFound)
		return
	case errors.Is(err, playlists.ErrDuplicateTrack):
		jsonError(w, "Content already in playlist", http.StatusConflict)
		return
	case err != nil:
		jsonError(w, "Failed to add track", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Track added to playlist successfully"})
}

// RemoveTrack deletes one track matching the content within a playlist.
// DELETE /playlists/{playlistId}/tracks/{contentId}
func (h *PlaylistsHandler) RemoveTrack(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	playlistID, err := strconv.ParseInt(vars["playlistId"], 10, 64)
	if err != nil {
		jsonError(w, "Playlist not found", http.StatusNotFound)
		return
	}
	contentID, err := strconv.ParseInt(vars["contentId"], 10, 64)
	if err != nil {
		jsonError(w, "Track not found in playlist", http.StatusNotFound)
		return
	}

	err = h.playlistsService.RemoveTrack(r.Context(), playlistID, contentID)
	switch {
	case errors.Is(err, playlists.ErrPlaylistNotFound):
		jsonError(w, "Playlist not found", http.StatusNotFound)
		return
	case errors.Is(err, playlists.ErrTrackNotFound):
		jsonError(w, "Track not found in playlist", http.StatusNotFound)
		return
	case err != nil:
		jsonError(w, "Failed to remove track", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Track removed from playlist successfully"})
}

// Tracks returns a playlist's tracks ordered by position.
// GET /playlists/{playlistId}/tracks
func (h *PlaylistsHandler) Tracks(w http.ResponseWriter, r *http.Request) {
	playlistID, err := strconv.ParseInt(mux.Vars(r)["playlistId"], 10, 64)
	if err != nil {
		jsonError(w, "Playlist not found", http.StatusNotFound)
		return
	}

	tracks, err := h.playlistsService.Tracks(r.Context(), playlistID)
	if errors.Is(err, playlists.ErrPlaylistNotFound) {
		jsonError(w, "Playlist not found", http.StatusNotFound)
		return
	}
	if err != nil {
		jsonError(w, "Failed to list tracks", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, tracks)
}
