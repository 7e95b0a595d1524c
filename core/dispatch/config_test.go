package dispatch_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellarlog/relay/core/dispatch"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := dispatch.DefaultConfig()
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, time.Second, cfg.PollInterval)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestNewAppliesDefaultsForZeroValues(t *testing.T) {
	t.Parallel()

	client, err := dispatch.New(dispatch.Config{})
	require.NoError(t, err)
	require.NotNil(t, client)

	// Zero-value config must not produce a busy-looping or instantly
	// timing-out client.
	assert.False(t, client.Stats().IsRunning)
}
