package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"streamvault/services/catalog"
	"streamvault/services/history"
)

// HistoryHandler handles play recording and history listing endpoints.
type HistoryHandler struct {
	catalogService *catalog.Service
	historyService *history.Service
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(catalogService *catalog.Service, historyService *history.Service) *HistoryHandler {
	return &HistoryHandler{
		catalogService: catalogService,
		historyService: historyService,
	}
}

// Play records a play event for the authenticated user.
// POST /content/{id}/play
func (h *HistoryHandler) Play(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	if user == nil {
		jsonError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		jsonError(w, "Content not found", http.StatusNotFound)
		return
	}

	item, err := h.catalogService.Get(r.Context(), id)
	if errors.Is(err, catalog.ErrContentNotFound) {
		jsonError(w, "Content not found", http.StatusNotFound)
		return
	}
	if err != nil {
		jsonError(w, "Failed to record play", http.StatusInternalServerError)
		return
	}

	if err := h.historyService.RecordPlay(r.Context(), user.ID, item.ID); err != nil {
		jsonError(w, "Failed to record play", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Playing " + item.Title})
}

// List returns the authenticated user's viewing history, newest first.
// GET /history
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	if user == nil {
		jsonError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := h.historyService.ListForUser(r.Context(), user.ID)
	if err != nil {
		jsonError(w, "Failed to list history", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
