// Package logging builds the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"streamvault/config"
)

// New constructs a text slog logger per the logging settings. When a file is
// configured, output is teed to a size-rotated log alongside stdout.
func New(cfg config.LoggingSettings) *slog.Logger {
	var out io.Writer = os.Stdout
	if cfg.File != "" {
		rotated := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		out = io.MultiWriter(os.Stdout, rotated)
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	})
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
