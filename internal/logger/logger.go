// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors used throughout the toolconfig command.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Standard output carries the exported settings, so log entries go to
// standard error unless another writer is supplied.
package logger

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label writing JSON
// entries to os.Stderr. See [NewLoggerTo].
func NewLogger(role string) *Logger {
	return NewLoggerTo(role, os.Stderr)
}

// NewLoggerTo constructs a *Logger for the given role label writing to w.
//
// The logger is configured with:
//   - global log level set to Debug (use [Logger.WithLevel] to narrow it);
//   - a "role" field set to role;
//   - a "run_id" field unique to this logger, used to correlate the entries
//     of a single invocation;
//   - a "time" timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
func NewLoggerTo(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}

	zerolog.CallerFieldName = "func"
	logger := zerolog.New(w).With().
		Str("role", role).
		Str("run_id", uuid.NewString()).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// WithLevel returns a child logger emitting only entries at level or above.
// Accepted levels are those understood by zerolog.ParseLevel
// ("debug", "info", "warn", "error", ...).
func (l *Logger) WithLevel(level string) (*Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("error parsing log level %q: %w", level, err)
	}

	return &Logger{l.Level(lvl)}, nil
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
