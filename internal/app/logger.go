package app

import (
	"io"
	"log/slog"
)

// newLogger builds the per-App logger writing to w. level and format are
// expected to have passed NewConfig; an unparsable level falls back to info.
// The global slog logger is left untouched.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
