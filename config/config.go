// Package config loads server settings from an optional TOML file with
// environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Settings holds the full server configuration.
type Settings struct {
	Server   ServerSettings   `toml:"server"`
	Database DatabaseSettings `toml:"database"`
	Logging  LoggingSettings  `toml:"logging"`
	Auth     AuthSettings     `toml:"auth"`
}

// ServerSettings configures the HTTP listener.
type ServerSettings struct {
	Addr string `toml:"addr"`
}

// DatabaseSettings configures the SQLite database.
type DatabaseSettings struct {
	Path string `toml:"path"`
}

// LoggingSettings configures slog output.
type LoggingSettings struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// AuthSettings configures session issuance.
type AuthSettings struct {
	SessionTTLDays int `toml:"session_ttl_days"`
}

// Defaults returns the settings used when no file or overrides are present.
func Defaults() Settings {
	return Settings{
		Server:   ServerSettings{Addr: ":8080"},
		Database: DatabaseSettings{Path: "data/streamvault.db"},
		Logging: LoggingSettings{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 3,
		},
		Auth: AuthSettings{SessionTTLDays: 30},
	}
}

// Manager loads settings from a config file path.
type Manager struct {
	path string
}

// NewManager creates a manager for the given config file path. The path may
// be empty to use defaults and environment overrides only.
func NewManager(path string) *Manager {
	return &Manager{path: path}
}

// Load reads the config file if present, applies defaults for missing
// values, and then applies STREAMVAULT_* environment overrides.
func (m *Manager) Load() (Settings, error) {
	settings := Defaults()

	if m.path != "" {
		data, err := os.ReadFile(m.path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Missing file is fine; defaults apply.
		case err != nil:
			return Settings{}, fmt.Errorf("read config %s: %w", m.path, err)
		default:
			if err := toml.Unmarshal(data, &settings); err != nil {
				return Settings{}, fmt.Errorf("parse config %s: %w", m.path, err)
			}
		}
	}

	applyEnvOverrides(&settings)

	if settings.Auth.SessionTTLDays <= 0 {
		settings.Auth.SessionTTLDays = Defaults().Auth.SessionTTLDays
	}

	return settings, nil
}

func applyEnvOverrides(settings *Settings) {
	if v := os.Getenv("STREAMVAULT_ADDR"); v != "" {
		settings.Server.Addr = v
	}
	if v := os.Getenv("STREAMVAULT_DB_PATH"); v != "" {
		settings.Database.Path = v
	}
	if v := os.Getenv("STREAMVAULT_LOG_LEVEL"); v != "" {
		settings.Logging.Level = v
	}
	if v := os.Getenv("STREAMVAULT_LOG_FILE"); v != "" {
		settings.Logging.File = v
	}
	if v := os.Getenv("STREAMVAULT_SESSION_TTL_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			settings.Auth.SessionTTLDays = days
		}
	}
}
