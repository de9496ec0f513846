// Package slog provides logging decorators for ytscan domain interfaces and
// the log-file setup shared by the CLI.
package slog

import (
	"io"
	"log/slog"
	"os"
)

// NewFileLogger returns a logger that appends text records to the file at
// path, creating it if needed. When mirror is non-nil, records are also
// written there (the CLI passes stderr in verbose mode). The returned closer
// owns the underlying file.
func NewFileLogger(path string, mirror io.Writer) (*slog.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = f
	if mirror != nil {
		w = io.MultiWriter(f, mirror)
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	return logger, f, nil
}
