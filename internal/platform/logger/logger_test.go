package logger_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medcamphq/medcamp-api/internal/config"
	"github.com/medcamphq/medcamp-api/internal/platform/logger"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{name: "debug level", logLevel: "debug"},
		{name: "info level", logLevel: "info"},
		{name: "warn level", logLevel: "warn"},
		{name: "error level", logLevel: "error"},
		{name: "invalid level falls back to info", logLevel: "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.Setup(config.ServerConfig{Port: 5000, LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, log)
		})
	}
}

func TestWithLoggerAndFromContext(t *testing.T) {
	base := slog.New(slog.NewJSONHandler(io.Discard, nil))
	ctx := logger.WithLogger(context.Background(), base)

	assert.Same(t, base, logger.FromContext(ctx))
	assert.Same(t, base, logger.FromContextOrDefault(ctx, nil))
}

func TestFromContext_Fallbacks(t *testing.T) {
	ctx := context.Background()

	assert.NotNil(t, logger.FromContext(ctx), "empty context should fall back to default logger")

	def := slog.New(slog.NewJSONHandler(io.Discard, nil))
	assert.Same(t, def, logger.FromContextOrDefault(ctx, def))
}
