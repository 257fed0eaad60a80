package logging

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger returns a slog logger writing JSON lines, tagged with the owning
// component.
func NewLogger(component string) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{})
	return slog.New(handler).With(slog.String("component", component))
}

// NewCLILogger returns a human-readable logger for interactive use. Verbose
// lowers the level to debug so request tracing shows up.
func NewCLILogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
