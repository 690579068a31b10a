// Package logger provides structured logging setup using slog.
package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// runIDKey is the context key for launch run IDs.
type runIDKey struct{}

// New creates a structured text logger writing to w. Verbose lowers the level
// to debug.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewRun returns a context carrying a fresh run ID. Every launch invocation
// gets its own so interleaved runs can be told apart in the logs.
func NewRun(ctx context.Context) context.Context {
	return WithRunID(ctx, uuid.NewString())
}

// WithRunID returns a new context with the given run ID.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey{}, runID)
}

// RunIDFromContext extracts the run ID from the context.
func RunIDFromContext(ctx context.Context) string {
	if v := ctx.Value(runIDKey{}); v != nil {
		return v.(string)
	}
	return ""
}

// FromContext returns a logger with context fields (run ID, etc.) attached.
func FromContext(ctx context.Context, base *slog.Logger) *slog.Logger {
	if runID := RunIDFromContext(ctx); runID != "" {
		return base.With("run_id", runID)
	}
	return base
}
