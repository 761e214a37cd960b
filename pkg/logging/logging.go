// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gmaschi/go-recipes-api/pkg/config/env"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// NewLogger builds a logger writing to w according to config.
// Unknown formats fall back to text.
func NewLogger(w io.Writer, config env.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     config.Level,
		AddSource: config.AddSource,
	}

	var handler slog.Handler
	switch strings.ToLower(config.Format) {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// SetDefault installs a stderr logger built from config as the slog default.
func SetDefault(config env.LogConfig) *slog.Logger {
	logger := NewLogger(os.Stderr, config)
	slog.SetDefault(logger)
	return logger
}
