package logger

import (
	"log/slog"
	"os"
	"sync"

	"fleetbook/internal/config"
)

var (
	singleton *slog.Logger
	once      sync.Once
)

// parseLevel maps a config string to a slog.Level, defaulting to info.
func parseLevel(s string) slog.Level {
	switch s {
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

// Init initializes the singleton logger from the provided config.
// It is thread-safe and idempotent - the first call wins, and
// subsequent calls return the same logger instance.
func Init(cfg config.Config) *slog.Logger {
	once.Do(func() {
		opts := &slog.HandlerOptions{
			Level: parseLevel(cfg.LogLevel),
		}

		var handler slog.Handler
		if cfg.LogFormat == "text" {
			handler = slog.NewTextHandler(os.Stdout, opts)
		} else {
			handler = slog.NewJSONHandler(os.Stdout, opts)
		}

		singleton = slog.New(handler)
	})

	return singleton
}

// L returns the singleton logger instance.
// Init must be called first, otherwise this will return nil.
func L() *slog.Logger {
	return singleton
}
