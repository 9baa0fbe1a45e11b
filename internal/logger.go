package internal

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

const serviceName = "foodmania-api"

// NewLogger builds the process logger. Prod writes JSON with RFC3339Nano
// timestamps; every other env writes text. An unknown level falls back
// to info and is reported on the new logger.
func NewLogger(w io.Writer, env string, level string) *slog.Logger {
	var lvl slog.Level
	badLevel := level != "" && lvl.UnmarshalText([]byte(strings.ToLower(level))) != nil
	if badLevel {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	if env == "prod" {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.String(slog.TimeKey, a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		}
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(h).With(slog.String("service", serviceName), slog.String("env", env))
	if badLevel {
		logger.Warn("unknown log level, using info", slog.String("value", level))
	}
	return logger
}
