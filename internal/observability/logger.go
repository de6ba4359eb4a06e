// Package observability holds logging and metrics setup.
package observability

import (
	"log/slog"
	"os"
)

// NewLogger builds the service logger. Dev environments get debug-level text
// output; everything else gets info-level JSON.
func NewLogger(env string) *slog.Logger {
	level := slog.LevelInfo
	if env == "dev" {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if env == "dev" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}
