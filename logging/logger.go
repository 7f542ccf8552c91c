// Package logging wraps slog.Logger with classifier-specific context so the
// CLI and the session share consistent field names.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with k-NN specific helpers.
type Logger struct {
	*slog.Logger
}

// New creates a Logger writing to w in the given format ("text" or "json").
// If w is nil, logs go to stderr.
func New(level slog.Level, format string, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return &Logger{Logger: slog.New(handler)}
}

// Noop creates a Logger that discards all output.
func Noop() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))}
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
	return level, nil
}

// WithSession adds a session field to the logger.
func (l *Logger) WithSession(id string) *Logger {
	return &Logger{Logger: l.Logger.With("session", id)}
}

// WithK adds a k (neighbor count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{Logger: l.Logger.With("k", k)}
}

// LogPrediction logs a single-instance prediction. k is expected to come
// from WithK.
func (l *Logger) LogPrediction(label string, err error) {
	if err != nil {
		l.Error("prediction failed", "error", err)
		return
	}
	l.Debug("prediction completed", "label", label)
}

// LogBatch logs a batch evaluation.
func (l *Logger) LogBatch(total, correct int, err error) {
	if err != nil {
		l.Error("batch evaluation failed", "total", total, "error", err)
		return
	}
	l.Info("batch evaluation completed",
		"total", total,
		"correct", correct,
	)
}
