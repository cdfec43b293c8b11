package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/offerly/console/internal/config"
)

func TestLoggerConfigStampsServiceIdentity(t *testing.T) {
	app := config.AppConfig{Name: "offerly-console", Version: "1.2.0", Env: "production"}
	cfg := loggerConfig(app, config.LoggerConfig{Level: "debug"})

	assert.Equal(t, "offerly-console", cfg.InitialFields["service"])
	assert.Equal(t, "1.2.0", cfg.InitialFields["version"])
	assert.Equal(t, "production", cfg.InitialFields["env"])
	assert.Equal(t, "json", cfg.Encoding)
	assert.False(t, cfg.Development)
	assert.Equal(t, zapcore.DebugLevel, cfg.Level.Level())
}

func TestLoggerConfigDevelopment(t *testing.T) {
	cfg := loggerConfig(config.AppConfig{Env: "development"}, config.LoggerConfig{Level: "WARN"})

	assert.True(t, cfg.Development)
	assert.Equal(t, "console", cfg.Encoding)
	assert.Equal(t, zapcore.WarnLevel, cfg.Level.Level())
}

func TestLoggerConfigUnknownLevelFallsBackToInfo(t *testing.T) {
	cfg := loggerConfig(config.AppConfig{Env: "staging"}, config.LoggerConfig{Level: "chatty"})
	assert.Equal(t, zapcore.InfoLevel, cfg.Level.Level())
	assert.False(t, cfg.Level.Enabled(zapcore.DebugLevel))

	logger, err := NewLogger(config.AppConfig{Name: "offerly-console"}, config.LoggerConfig{Level: "info"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}
