package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellarlog/relay/core/config"
)

type timeoutConfig struct {
	RequestTimeout time.Duration `env:"TEST_REQUEST_TIMEOUT" envDefault:"10s"`
	PollInterval   time.Duration `env:"TEST_POLL_INTERVAL" envDefault:"1s"`
}

type endpointConfig struct {
	BaseURL string `env:"TEST_BASE_URL" envDefault:"https://api.example.com"`
	Enabled bool   `env:"TEST_LOOKUP_ENABLED" envDefault:"true"`
}

type requiredConfig struct {
	APIKey string `env:"TEST_MISSING_REQUIRED_KEY,required"`
}

type defaultsConfig struct {
	RequestTimeout time.Duration `env:"TEST_DEFAULTS_REQUEST_TIMEOUT" envDefault:"10s"`
	PollInterval   time.Duration `env:"TEST_DEFAULTS_POLL_INTERVAL" envDefault:"1s"`
}

func TestLoadDefaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, time.Second, cfg.PollInterval)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TEST_BASE_URL", "https://override.example.org")
	t.Setenv("TEST_LOOKUP_ENABLED", "false")

	var cfg endpointConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "https://override.example.org", cfg.BaseURL)
	assert.False(t, cfg.Enabled)
}

func TestLoadCachesPerType(t *testing.T) {
	t.Setenv("TEST_POLL_INTERVAL", "250ms")

	var first timeoutConfig
	require.NoError(t, config.Load(&first))

	// Environment changes after the first load are not observed.
	t.Setenv("TEST_POLL_INTERVAL", "9s")

	var second timeoutConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second)
}

func TestLoadNil(t *testing.T) {
	t.Parallel()

	var cfg *timeoutConfig
	err := config.Load(cfg)
	require.ErrorIs(t, err, config.ErrNilConfig)
}

func TestLoadMissingRequired(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParseFailed)
}
