package observability

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger(t *testing.T) {
	t.Run("returns a usable logger", func(t *testing.T) {
		logger := InitLogger(LogConfig{Level: "debug", Format: "json"})
		require.NotNil(t, logger)
		assert.True(t, logger.Enabled(nil, slog.LevelDebug))
	})

	t.Run("defaults unknown level to info", func(t *testing.T) {
		logger := InitLogger(LogConfig{Level: "verbose", Format: "text"})
		assert.False(t, logger.Enabled(nil, slog.LevelDebug))
		assert.True(t, logger.Enabled(nil, slog.LevelInfo))
	})
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}
