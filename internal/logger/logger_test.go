package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetbook/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "info", input: "info", want: slog.LevelInfo},
		{name: "warn", input: "warn", want: slog.LevelWarn},
		{name: "error", input: "error", want: slog.LevelError},
		{name: "empty defaults to info", input: "", want: slog.LevelInfo},
		{name: "unknown defaults to info", input: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}

func TestInitIdempotent(t *testing.T) {
	cfg := config.Config{
		LogLevel:    "info",
		LogFormat:   "json",
		MongoURI:    "mongodb://localhost:27017",
		MongoDBName: "test",
	}

	first := Init(cfg)
	require.NotNil(t, first)

	// A second Init with different settings must return the same instance.
	cfg.LogFormat = "text"
	second := Init(cfg)

	assert.Same(t, first, second)
	assert.Same(t, first, L())
}
