package discovery

// Config holds the resolver configuration. Provider base URLs default to
// the public catalogue endpoints.
type Config struct {
	Enabled bool `env:"DISCOVERY_LOOKUP_ENABLED" envDefault:"true"`

	EDSMSystemURL    string `env:"DISCOVERY_EDSM_SYSTEM_URL" envDefault:"https://www.edsm.net/api-v1/system"`
	SpanshSystemURL  string `env:"DISCOVERY_SPANSH_SYSTEM_URL" envDefault:"https://www.spansh.co.uk/api/system"`
	EdastroSystemURL string `env:"DISCOVERY_EDASTRO_SYSTEM_URL" envDefault:"https://edastro.com/api/starsystem"`
}

// DefaultConfig returns the resolver defaults with lookups enabled.
func DefaultConfig() Config {
	return Config{
		Enabled:          true,
		EDSMSystemURL:    "https://www.edsm.net/api-v1/system",
		SpanshSystemURL:  "https://www.spansh.co.uk/api/system",
		EdastroSystemURL: "https://edastro.com/api/starsystem",
	}
}
