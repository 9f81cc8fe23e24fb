package main

import (
	"io"
	"log/slog"
)

// newLogger creates the diagnostic logger. Diagnostics always go to the
// error stream so they never mix with the printed content.
func newLogger(levelStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(outW, &slog.HandlerOptions{Level: level}))
}
