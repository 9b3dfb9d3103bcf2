package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"streamvault/services/accounts"
	"streamvault/services/catalog"
	"streamvault/services/history"
	"streamvault/services/playlists"
)

// Services bundles the domain services the HTTP surface depends on.
type Services struct {
	Accounts  *accounts.Service
	Catalog   *catalog.Service
	History   *history.Service
	Playlists *playlists.Service
}

// RegisterRoutes attaches every API endpoint to the router.
func RegisterRoutes(r *mux.Router, svcs Services) {
	auth := NewAuthMiddleware(svcs.Accounts)

	accountsHandler := NewAccountsHandler(svcs.Accounts)
	catalogHandler := NewCatalogHandler(svcs.Catalog)
	historyHandler := NewHistoryHandler(svcs.Catalog, svcs.History)
	playlistsHandler := NewPlaylistsHandler(svcs.Playlists)

	// Public routes
	r.HandleFunc("/register", accountsHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", accountsHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/content", catalogHandler.ListContent).Methods(http.MethodGet)
	r.HandleFunc("/content", catalogHandler.CreateContent).Methods(http.MethodPost)
	r.HandleFunc("/content/{id}", catalogHandler.GetContent).Methods(http.MethodGet)
	r.HandleFunc("/search", catalogHandler.SearchContent).Methods(http.MethodGet)

	// Authenticated routes
	protected := r.PathPrefix("/").Subrouter()
	protected.Use(auth.RequireAuth)
	protected.HandleFunc("/logout", accountsHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/content/{id}/play", historyHandler.Play).Methods(http.MethodPost)
	protected.HandleFunc("/history", historyHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/playlists", playlistsHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/playlists", playlistsHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/playlists/{playlistId}/tracks", playlistsHandler.Tracks).Methods(http.MethodGet)
	protected.HandleFunc("/playlists/{playlistId}/tracks", playlistsHandler.AddTrack).Methods(http.MethodPost)
	protected.HandleFunc("/playlists/{playlistId}/tracks/{contentId}", playlistsHandler.RemoveTrack).Methods(http.MethodDelete)
}
