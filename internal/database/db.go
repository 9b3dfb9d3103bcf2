package database

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// DB wraps the database connection and provides access to the repositories.
type DB struct {
	conn *sql.DB

	Users     *UserRepository
	Content   *ContentRepository
	Playlists *PlaylistRepository
	History   *HistoryRepository
	Sessions  *SessionRepository
}

// Config holds database configuration.
type Config struct {
	DatabasePath string
}

// NewDB creates a new database connection and runs migrations.
func NewDB(config Config) (*DB, error) {
	// Ensure the parent directory exists
	dbDir := filepath.Dir(config.DatabasePath)
	if dbDir != "" && dbDir != "." {
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	connString := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000&_foreign_keys=on",
		config.DatabasePath)

	conn, err := sql.Open("sqlite3", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Modest pool; requests are short-lived reads and single-row writes.
	conn.SetMaxOpenConns(8)
	conn.SetMaxIdleConns(3)
	conn.SetConnMaxLifetime(0)
	conn.SetConnMaxIdleTime(15 * time.Minute)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to set pragma '%s': %w", pragma, err)
		}
	}

	if err := runMigrations(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db := &DB{
		conn: conn,
	}

	db.Users = NewUserRepository(conn)
	db.Content = NewContentRepository(conn)
	db.Playlists = NewPlaylistRepository(conn)
	db.History = NewHistoryRepository(conn)
	db.Sessions = NewSessionRepository(conn)

	return db, nil
}

// runMigrations runs database migrations using Goose.
func runMigrations(db *sql.DB) error {
	slog.Info("starting database migrations")

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	currentVersion, err := goose.GetDBVersion(db)
	if err != nil {
		slog.Warn("could not get current DB version", "error", err)
		currentVersion = 0
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	newVersion, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to verify migration version: %w", err)
	}
	slog.Info("database migrated", "from", currentVersion, "to", newVersion)

	// Verify that the users table exists
	var tableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='users'").Scan(&tableName)
	if err != nil {
		return fmt.Errorf("migration verification failed: users table does not exist: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Connection returns the underlying database connection.
func (db *DB) Connection() *sql.DB {
	return db.conn
}
