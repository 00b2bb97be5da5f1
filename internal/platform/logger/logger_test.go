package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/studyforge/planner-api/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_LevelParsing(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		errorSeen bool
	}{
		{level: "debug", debugSeen: true, errorSeen: true},
		{level: "info", debugSeen: false, errorSeen: true},
		{level: "warn", debugSeen: false, errorSeen: true},
		{level: "error", debugSeen: false, errorSeen: true},
		{level: "bogus", debugSeen: false, errorSeen: true}, // falls back to info
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := Setup(config.ServerConfig{Port: 8080, LogLevel: tt.level})
			require.NotNil(t, logger)

			assert.Equal(t, tt.debugSeen, logger.Enabled(context.Background(), slog.LevelDebug))
			assert.Equal(t, tt.errorSeen, logger.Enabled(context.Background(), slog.LevelError))
		})
	}
}

func TestSetup_InstallsDefaultLogger(t *testing.T) {
	logger := Setup(config.ServerConfig{Port: 8080, LogLevel: "info"})
	assert.Same(t, logger, slog.Default())
}
