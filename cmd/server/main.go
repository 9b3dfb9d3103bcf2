package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"streamvault/config"
	"streamvault/handlers"
	"streamvault/internal/database"
	"streamvault/internal/logging"
	"streamvault/services/accounts"
	"streamvault/services/catalog"
	"streamvault/services/history"
	"streamvault/services/playlists"
	"streamvault/utils"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	flag.Parse()

	settings, err := config.NewManager(*configPath).Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(settings.Logging)
	slog.SetDefault(logger)

	db, err := database.NewDB(database.Config{DatabasePath: settings.Database.Path})
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	sessionTTL := time.Duration(settings.Auth.SessionTTLDays) * 24 * time.Hour

	svcs := handlers.Services{
		Accounts:  accounts.NewService(db.Users, db.Sessions, sessionTTL),
		Catalog:   catalog.NewService(db.Content),
		History:   history.NewService(db.History),
		Playlists: playlists.NewService(db.Playlists),
	}

	router := utils.NewRouter()
	handlers.RegisterRoutes(router, svcs)

	server := &http.Server{
		Addr:              settings.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", settings.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
