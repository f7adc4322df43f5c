// Package logger provides structured logging using Go's standard library slog.
//
// Logs go to stderr so the walkthrough's lesson text on stdout stays readable
// and can be piped on its own.
//
// Usage:
//
//	log := logger.New(cfg.Log)
//	log.Info("server starting", "port", 8080)
//	log.Error("failed to connect", "error", err)
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"lessonbox/src/infra/config"
)

// New creates a new slog.Logger writing to stderr.
func New(cfg config.LogConfig) *slog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter creates a new logger that writes to the specified writer.
// Supported formats are json, text and plain; anything else falls back to json.
func NewWithWriter(cfg config.LogConfig, w io.Writer) *slog.Logger {
	level := parseLevel(cfg.Level)

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "plain":
		handler = &plainHandler{level: level, w: w, mu: &sync.Mutex{}}
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// parseLevel converts a string log level to slog.Level.
// Defaults to Info if the level is not recognized.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID returns a new logger with the request ID added to all log entries.
func WithRequestID(log *slog.Logger, requestID string) *slog.Logger {
	if log == nil {
		return nil
	}
	return log.With("request_id", requestID)
}

// WithComponent returns a new logger with a component name added.
func WithComponent(log *slog.Logger, component string) *slog.Logger {
	if log == nil {
		return nil
	}
	return log.With("component", component)
}

// Info is a convenience wrapper for slog.Logger.Info, guarding nil.
func Info(log *slog.Logger, msg string, args ...any) {
	if log == nil {
		return
	}
	log.Info(msg, args...)
}

// Warn is a convenience wrapper for slog.Logger.Warn, guarding nil.
func Warn(log *slog.Logger, msg string, args ...any) {
	if log == nil {
		return
	}
	log.Warn(msg, args...)
}

// Error is a convenience wrapper for slog.Logger.Error, guarding nil.
func Error(log *slog.Logger, msg string, args ...any) {
	if log == nil {
		return
	}
	log.Error(msg, args...)
}

// Debug is a convenience wrapper for slog.Logger.Debug, guarding nil.
func Debug(log *slog.Logger, msg string, args ...any) {
	if log == nil {
		return
	}
	log.Debug(msg, args...)
}

// plainHandler writes "LEVEL message key=value ..." lines without timestamps.
type plainHandler struct {
	level slog.Level
	w     io.Writer
	mu    *sync.Mutex
	attrs []slog.Attr
}

func (h *plainHandler) Enabled(_ context.Context, lvl slog.Level) bool {
	return lvl >= h.level
}

func (h *plainHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Level.String())
	b.WriteByte(' ')
	b.WriteString(r.Message)
	write := func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value.Any())
		return true
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(write)
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *plainHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &next
}

func (h *plainHandler) WithGroup(name string) slog.Handler {
	_ = name
	return h
}
