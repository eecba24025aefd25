package main

import (
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger returns a text logger on stderr, or a JSON logger over a
// rotating file when file is set. The returned closer must be closed
// before exit.
func newLogger(level, file string, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if file == "" {
		return slog.New(slog.NewTextHandler(stderr, opts)), io.NopCloser(nil), nil
	}

	w := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    8, // MB
		MaxBackups: 3,
	}
	return slog.New(slog.NewJSONHandler(w, opts)), w, nil
}
