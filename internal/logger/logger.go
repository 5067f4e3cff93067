/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ijuttt */

// Package logger provides component-scoped zerolog loggers.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New returns a sub-logger tagged with the given component name.
// Call it after Configure so the logger picks up the configured output.
func New(component string) zerolog.Logger {
	return log.With().
		Str("component", component).
		Logger()
}

// Configure redirects the global logger. Debug logging is enabled when
// debug is true or the DEBUG environment variable is set.
func Configure(out io.Writer, debug bool) {
	level := zerolog.InfoLevel
	if _, ok := os.LookupEnv("DEBUG"); ok || debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if out == io.Discard {
		log.Logger = zerolog.New(io.Discard)
		return
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    out != os.Stderr,
	})
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	Configure(os.Stderr, false)
}
