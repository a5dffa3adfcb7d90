// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger writing to stderr.
// format is "text", "json" or "auto". Auto uses slog.TextHandler when
// stderr is a terminal and slog.JSONHandler when it is piped or
// redirected (scheduled tasks, CI, scripts).
//
// Callers scope the logger with command-specific context via With():
//
//	logger = logger.With("command", "export", "system", systemName)
func NewCommandLogger(level slog.Level, format string) (*slog.Logger, error) {
	return newLogger(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), level, format)
}

func newLogger(w io.Writer, terminal bool, level slog.Level, format string) (*slog.Logger, error) {
	options := &slog.HandlerOptions{Level: level}
	switch format {
	case "text":
	case "json":
	case "auto", "":
		format = "json"
		if terminal {
			format = "text"
		}
	default:
		return nil, fmt.Errorf("unknown log format %q (want auto, text or json)", format)
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, options)), nil
	}
	return slog.New(slog.NewJSONHandler(w, options)), nil
}
