package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> parsed struct value
)

// Load parses environment variables into cfg. The result is cached per
// concrete type: repeated calls with the same type receive the value from
// the first successful parse, so configuration stays consistent across the
// process even if the environment mutates later.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	// .env is a development convenience; absence is not an error.
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	// A concurrent Load of the same type may have stored first; prefer the
	// stored value so every caller observes identical configuration.
	actual, _ := cache.LoadOrStore(key, *cfg)
	*cfg = actual.(T)
	return nil
}

// MustLoad is Load that panics on failure. Intended for process startup
// where a missing required variable should abort immediately.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
