// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the mpw binaries.
//
// Loggers never receive secret material. Derivation code logs site names,
// counters, tiers, job IDs and timings only.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger and adds job and context helpers.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a debug-level JSON logger on os.Stdout. Every entry
// carries role, a timestamp and the calling function under "func".
func NewLogger(role string) *Logger {
	configureGlobals(zerolog.DebugLevel)
	return newLogger(os.Stdout, role)
}

// NewClientLogger constructs a *Logger for interactive binaries, where
// stdout belongs to the terminal UI. Entries are appended to logPath; an
// empty logPath means a "logs" file next to the executable. If the file
// cannot be opened the logger falls back to os.Stderr.
//
// level is a zerolog level name ("debug", "info", ...); an empty or unknown
// name selects info.
func NewClientLogger(role, logPath, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	configureGlobals(lvl)

	if logPath == "" {
		execPath, _ := os.Executable()
		logPath = filepath.Join(filepath.Dir(execPath), "logs")
	}

	var out io.Writer = os.Stderr
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err == nil {
		out = logFile
	}

	return newLogger(out, role)
}

func configureGlobals(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

func newLogger(out io.Writer, role string) *Logger {
	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched independently.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithJob returns a child logger tagged with a derivation job ID.
func (l *Logger) WithJob(jobID string) *Logger {
	return &Logger{l.With().Str("job_id", jobID).Logger()}
}

// WithContext attaches l to ctx so that [FromContext] can retrieve it
// further down the call chain.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext returns the logger attached by [Logger.WithContext], or
// zerolog's default logger. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
