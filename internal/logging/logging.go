// Package logging provides structured logging for the command-line
// surface. It uses the standard library log/slog package; the core
// timeline packages stay log-free.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New creates a text logger at the given level writing to w.
// Supported levels: debug, info, warn, error.
func New(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler)
}

// WithComponent returns a logger with a component attribute.
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	return logger.With("component", component)
}
