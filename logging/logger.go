// Package logging wraps log/slog with the field names used across minspan.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Logger wraps slog.Logger with domain helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// A nil handler means a text handler on stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger writing JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger writing human-readable records to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// New builds a Logger from configuration strings.
// format is "text" or "json"; level is parsed by ParseLevel.
func New(w io.Writer, format, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(format) {
	case "", "text":
		return NewTextLogger(w, lvl), nil
	case "json":
		return NewJSONLogger(w, lvl), nil
	default:
		return nil, fmt.Errorf("logging: unknown format %q", format)
	}
}

// ParseLevel maps debug, info, warn and error (any case) to slog levels.
// The empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("logging: %w", err)
	}

	return lvl, nil
}

// With returns a Logger carrying extra attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// LogBuild logs one tree construction.
func (l *Logger) LogBuild(ctx context.Context, points, edges int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "mst build failed",
			"points", points,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "mst build completed",
		"points", points,
		"edges", edges,
		"elapsed", elapsed,
	)
}

// LogTour logs one route approximation.
func (l *Logger) LogTour(ctx context.Context, points, visited int, length float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "tour failed",
			"points", points,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "tour completed",
		"points", points,
		"visited", visited,
		"length", length,
	)
}

// LogCache logs a cache lookup or write.
func (l *Logger) LogCache(ctx context.Context, op, key string, hit bool, err error) {
	if err != nil {
		l.WarnContext(ctx, "cache "+op+" failed",
			"key", key,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "cache "+op,
		"key", key,
		"hit", hit,
	)
}

// LogRequest logs a served HTTP request.
func (l *Logger) LogRequest(ctx context.Context, method, path string, status int, elapsed time.Duration) {
	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}
	l.Log(ctx, level, "request",
		"method", method,
		"path", path,
		"status", status,
		"elapsed", elapsed,
	)
}
