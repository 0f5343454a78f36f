// internal/pkg/logger/logger.go

// Package logger configures the application's structured logging on
// top of log/slog.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// ContextKey represents keys for context values
type ContextKey string

// Context keys for logging
const (
	ContextKeyRequestID ContextKey = "request_id"
)

// SetupLogger initializes the process logger and installs it as the
// slog default
func SetupLogger(level string, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	var handler slog.Handler
	switch format {
	case "text":
		handler = slog.NewTextHandler(os.Stdout, opts)
	default:
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	// Wrap with context handler so request IDs set by middleware show
	// up on every record logged with a *Context method.
	logger := slog.New(NewContextHandler(handler))
	slog.SetDefault(logger)

	return logger
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

// ContextHandler extracts well-known values from the context and adds
// them as attributes
type ContextHandler struct {
	slog.Handler
}

// NewContextHandler wraps a handler with context extraction
func NewContextHandler(inner slog.Handler) *ContextHandler {
	return &ContextHandler{Handler: inner}
}

func (h *ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok && requestID != "" {
		record.AddAttrs(slog.String(string(ContextKeyRequestID), requestID))
	}
	return h.Handler.Handle(ctx, record)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithGroup(name)}
}
