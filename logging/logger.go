// SPDX-License-Identifier: MIT

// Package logging wraps log/slog with the field names used across the
// multiply driver, the critical section and the pending-operations queue.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with library-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
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

// NewJSONLogger creates a Logger that writes JSON records to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes human-readable records to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
// Unknown strings fall back to info.
func ParseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// OrNoop returns l, or a discarding logger when l is nil.
func OrNoop(l *Logger) *Logger {
	if l == nil {
		return NoopLogger()
	}
	return l
}

// WithComponent tags every record with the emitting component.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("component", name),
	}
}

// LogMultiply logs the outcome of one SpGEMM call.
func (l *Logger) LogMultiply(ctx context.Context, variant string, rows, cols int, flops, nvals int64, dur time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "multiply failed",
			"variant", variant,
			"rows", rows,
			"cols", cols,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "multiply completed",
		"variant", variant,
		"rows", rows,
		"cols", cols,
		"flops", flops,
		"nvals", nvals,
		"duration", dur,
	)
}

// LogCriticalFailure logs a lock or unlock failure of the critical section.
func (l *Logger) LogCriticalFailure(ctx context.Context, backend, phase string, err error) {
	l.ErrorContext(ctx, "critical section failure",
		"backend", backend,
		"phase", phase,
		"error", err,
	)
}

// LogQueueWait logs a drain of the pending-operations queue.
func (l *Logger) LogQueueWait(ctx context.Context, materialized int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "pending queue wait failed",
			"materialized", materialized,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "pending queue drained",
		"materialized", materialized,
	)
}
