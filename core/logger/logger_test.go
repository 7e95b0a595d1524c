package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellarlog/relay/core/logger"
)

func TestNewJSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(&buf),
	)

	log.Info("test message", logger.Component("test"))

	out := buf.String()
	assert.Contains(t, out, "test message")
	assert.Contains(t, out, `"component":"test"`)
}

func TestNewLevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithLevel(slog.LevelWarn),
		logger.WithOutput(&buf),
	)

	log.Info("dropped")
	log.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestWithProductionPreset(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithProduction("relay"),
		logger.WithOutput(&buf),
	)

	log.Debug("debug is filtered in production")
	log.Info("visible")

	out := buf.String()
	require.Contains(t, out, "visible")
	assert.Contains(t, out, `"app":"relay"`)
	assert.NotContains(t, out, "debug is filtered")
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	log := logger.Discard()
	require.NotNil(t, log)
	log.Error("goes nowhere")
}
