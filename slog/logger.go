package slog

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger writing to w. Level should be a slog
// level name: DEBUG, INFO, WARN or ERROR. Unrecognized values mean INFO.
func NewLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
