package app

import (
	"io"
	"log/slog"
	"strings"

	"github.com/heartmarshall/daybook-backend/internal/config"
)

// NewLogger builds the process logger and installs it as slog's default.
// Every record carries app and version attributes so that lines from the
// server and from one-shot CLI runs (seed, notify) can be told apart.
//
// Format "text" adds source locations for local work; anything else is JSON.
// Unknown levels fall back to info.
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if opts.AddSource {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler).With(
		slog.String("app", "daybook"),
		slog.String("version", BuildVersion()),
	)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
