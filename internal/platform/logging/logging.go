// Package logging builds the service's slog loggers and carries them through
// request contexts.
//
// Every logger built by New passes its attributes through a masq redaction
// layer, so passwords, bcrypt hashes and session tokens never reach the
// output even when a caller logs a whole struct by mistake.
//
// Services log failures with the operation name, the entity ids involved and
// the full error chain:
//
//	logging.FromContext(ctx).ErrorContext(ctx, "failed to update task",
//	    slog.String("operation", "UpdateTask"),
//	    slog.String("task_id", id),
//	    slog.Any("error", err),
//	)
//
// Inside a request the context logger already carries request_id,
// correlation_id and, once a session is resolved, user_id.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// New creates a logger writing to w. level is one of debug, info, warn (or
// warning) and error, case-insensitive, and defaults to info. format "text"
// selects the logfmt-style handler; anything else produces JSON. Debug
// loggers also record the source location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if strings.EqualFold(format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OrDiscard returns logger, or Discard when logger is nil.
func OrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return Discard()
	}
	return logger
}

// WithLogger returns a new context with the given logger stored in it.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// With returns a context whose logger is the current context logger
// enriched with args.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
