// Package observability builds the structured logger shared by the CLI and
// the application services.
package observability

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	attrService = "service"

	FormatText = "text"
	FormatJSON = "json"
)

// NewLogger returns a logger writing records at or above level to w, tagged
// with the service name.
func NewLogger(w io.Writer, service, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		handler = slog.NewTextHandler(w, opts)
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}

	return slog.New(handler.WithAttrs([]slog.Attr{slog.String(attrService, service)})), nil
}

func ParseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(trimmed)); err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", raw, err)
	}

	return level, nil
}

// OrDiscard returns logger, or a logger that drops everything when nil.
func OrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return logger
}
