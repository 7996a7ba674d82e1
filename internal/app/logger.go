package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ormondry/seoforge-backend/internal/config"
)

// NewLogger builds the process-wide *slog.Logger from LogConfig and
// installs it via slog.SetDefault.
//
// Format "json" emits one JSON object per record, for log shippers.
// Any other format falls back to human-readable text with source
// locations, for local development. Level is one of debug, info, warn,
// error (case-insensitive); unknown values mean info. Records go to
// os.Stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg))
	slog.SetDefault(logger)
	return logger
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
