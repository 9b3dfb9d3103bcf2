package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"streamvault/models"
	"streamvault/services/catalog"
)

// CatalogHandler handles content catalog endpoints.
type CatalogHandler struct {
	catalogService *catalog.Service
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func summaries(items []models.Content) []models.ContentSummary {
	out := make([]models.ContentSummary, 0, len(items))
	for _, c := range items {
		out = append(out, c.Summary())
	}
	return out
}

// ListContent returns the whole catalog.
// GET /content
func (h *CatalogHandler) ListContent(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogService.List(r.Context())
	if err != nil {
		jsonError(w, "Failed to list content", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summaries(items))
}

// GetContent returns one catalog item.
// GET /content/{id}
func (h *CatalogHandler) GetContent(w http.ResponseWriter, r *http.Request) {
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
		jsonError(w, "Failed to get content", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, item.Summary())
}

// SearchContent returns catalog items matching the optional query, genre,
// year, and rating filters combined with logical AND.
// GET /search
func (h *CatalogHandler) SearchContent(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	filter := models.SearchFilter{
		Query: params.Get("query"),
		Genre: params.Get("genre"),
	}
	if raw := params.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			jsonError(w, "Invalid year", http.StatusBadRequest)
			return
		}
		filter.Year = &year
	}
	if raw := params.Get("rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			jsonError(w, "Invalid rating", http.StatusBadRequest)
			return
		}
		filter.MinRating = &rating
	}

	items, err := h.catalogService.Search(r.Context(), filter)
	if err != nil {
		jsonError(w, "Search failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summaries(items))
}

// CreateContent ingests a new catalog item.
// POST /content
func (h *CatalogHandler) CreateContent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title         string  `json:"title"`
		Synopsis      string  `json:"synopsis"`
		Cast          string  `json:"cast"`
		Director      string  `json:"director"`
		Genre         string  `json:"genre"`
		ReleaseYear   int     `json:"release_year"`
		AverageRating float64 `json:"average_rating"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid JSON data", http.StatusBadRequest)
		return
	}

	id, err := h.catalogService.Create(r.Context(), models.Content{
		Title:         req.Title,
		Synopsis:      req.Synopsis,
		Cast:          req.Cast,
		Director:      req.Director,
		Genre:         req.Genre,
		ReleaseYear:   req.ReleaseYear,
		AverageRating: req.AverageRating,
	})
	if errors.Is(err, catalog.ErrInvalidContent) {
		jsonError(w, "Title is required and rating must be a finite number", http.StatusBadRequest)
		return
	}
	if err != nil {
		jsonError(w, "Failed to create content", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Content created successfully",
		"id":      id,
	})
}
