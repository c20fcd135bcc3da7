// Package logging configures the slog loggers used by the imgcurate binaries.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a text logger writing to w at the named level.
// An empty level falls back to LevelFromEnv.
func New(level string, w io.Writer) *slog.Logger {
	if level == "" {
		level = LevelFromEnv()
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(handler)
}

// Discard returns a logger that drops every record
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// LevelFromEnv reads DEBUG first, then LOG_LEVEL
func LevelFromEnv() string {
	switch strings.ToLower(os.Getenv("DEBUG")) {
	case "1", "true", "yes", "on":
		return "debug"
	}
	return os.Getenv("LOG_LEVEL")
}

// IsDebug reports whether the environment asks for debug logging
func IsDebug() bool {
	return ParseLevel(LevelFromEnv()) == slog.LevelDebug
}

// ParseLevel maps a level name to a slog.Level, defaulting to info
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
