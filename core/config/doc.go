// Package config provides type-safe environment variable loading with
// per-type caching using Go generics. Each configuration type is loaded
// once and cached for subsequent calls.
//
// The package loads .env files on first use (a missing file is not an
// error) and parses environment variables into struct fields with the
// caarlos0/env library.
//
// Basic usage:
//
//	type DispatchConfig struct {
//		RequestTimeout time.Duration `env:"DISPATCH_REQUEST_TIMEOUT" envDefault:"10s"`
//		PollInterval   time.Duration `env:"DISPATCH_POLL_INTERVAL" envDefault:"1s"`
//	}
//
//	var cfg DispatchConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure during startup wiring:
//	config.MustLoad(&cfg)
//
// A second Load with the same type returns the cached value; different
// types are cached independently.
package config
