package hlog

import (
	"io"
	"log/slog"
)

type Logger = *slog.Logger

func NewLogger(h slog.Handler) Logger {
	return slog.New(h)
}

// NewPlainLogger logs key=value records, for output that is not a terminal.
func NewPlainLogger(w io.Writer, leveler slog.Leveler) Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: leveler}))
}
