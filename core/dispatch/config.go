package dispatch

import "time"

// Config holds the delivery client configuration. Designed for
// environment-based loading via the core/config package.
type Config struct {
	RequestTimeout  time.Duration `env:"DISPATCH_REQUEST_TIMEOUT" envDefault:"10s"`
	PollInterval    time.Duration `env:"DISPATCH_POLL_INTERVAL" envDefault:"1s"`
	ShutdownTimeout time.Duration `env:"DISPATCH_SHUTDOWN_TIMEOUT" envDefault:"15s"`

	// User-Agent pair sent on every outbound request.
	ClientName    string `env:"DISPATCH_CLIENT_NAME" envDefault:"relay"`
	ClientVersion string `env:"DISPATCH_CLIENT_VERSION" envDefault:"0.0.0"`
}

// DefaultConfig returns sensible defaults for production use.
func DefaultConfig() Config {
	return Config{
		RequestTimeout:  10 * time.Second,
		PollInterval:    time.Second,
		ShutdownTimeout: 15 * time.Second,
		ClientName:      "relay",
		ClientVersion:   "0.0.0",
	}
}
