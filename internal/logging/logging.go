// Package logging constructs slog loggers for vtkcheck subsystems.
//
// The MCP server must log to stderr because stdout carries the JSON-RPC
// protocol stream; everything else defaults to stderr too so command
// output stays clean for piping.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the log output encoding.
type Format string

const (
	// JSONFormat emits one JSON object per log record
	JSONFormat Format = "json"
	// TextFormat emits human-readable key=value records
	TextFormat Format = "text"
)

// Config holds logger configuration.
type Config struct {
	Level  string    // debug, info, warn, error
	Format Format    // json or text
	Output io.Writer // defaults to stderr
}

// New creates a logger from the given configuration.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if cfg.Format == JSONFormat {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler)
}

// NewDiscard returns a logger that drops all records. Used in tests and
// as a safe fallback when no logger is wired.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel converts a level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
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
