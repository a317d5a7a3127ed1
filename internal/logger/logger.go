package logger

import (
	"io"
	"log/slog"

	"github.com/roach88/advkit/internal/config"
)

// Setup configures the global slog logger based on environment. Logs go to
// w so command output on stdout stays clean.
func Setup(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// WithAdvancement adds the advancement id to logger context
func WithAdvancement(logger *slog.Logger, id string) *slog.Logger {
	return logger.With("advancement", id)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
