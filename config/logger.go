// SPDX-License-Identifier: MIT
// Package: config
//
// logger.go - zerolog console logger.

package config

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger returns a console logger at level; an unknown level falls back
// to info.
func NewLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).Level(lvl).With().Timestamp().Str("service", "sbmgen").Logger()
}

// Logger builds the logger configured under logging.level.
func (c *Config) Logger(w io.Writer) zerolog.Logger {
	return NewLogger(w, c.LogLevel())
}
