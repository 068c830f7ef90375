// Package logging configures the application log sink.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LevelCritical marks unrecoverable failures (startup errors, unhandled
// errors on the exit path). slog has no built-in level above Error.
const LevelCritical = slog.Level(12)

// Setup opens the append-only log file and installs a text handler on
// it as the process-wide default logger. Every run is tagged with a
// fresh session id. If the file cannot be opened the logger falls back
// to stderr so startup problems are still visible somewhere.
func Setup(path string, level slog.Level) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl >= LevelCritical {
					a.Value = slog.StringValue("CRITICAL")
				}
			}
			return a
		},
	}

	closeFile := func() {}
	sink := os.Stderr

	if err := os.MkdirAll(filepath.Dir(path), 0700); err == nil {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err == nil {
			sink = f
			closeFile = func() { _ = f.Close() }
		}
	}

	logger := slog.New(slog.NewTextHandler(sink, opts)).
		With("session", uuid.New().String())
	slog.SetDefault(logger)

	return logger, closeFile, nil
}

// ParseLevel maps a config/flag level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	case "critical":
		return LevelCritical, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Critical logs at the CRITICAL level on the given logger.
func Critical(log *slog.Logger, msg string, args ...any) {
	log.Log(context.Background(), LevelCritical, msg, args...)
}
