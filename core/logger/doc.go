// Package logger provides structured logging built on the standard slog
// package: a factory with environment presets and nil-safe attribute
// helpers shared across the module.
//
// Basic usage:
//
//	log := logger.New(
//		logger.WithDevelopment("relay"),
//		logger.WithLevel(slog.LevelDebug),
//	)
//
//	log.Info("dispatcher started",
//		logger.Component("dispatch"),
//		logger.Event("startup"),
//	)
//
// The production preset emits JSON at info level:
//
//	log := logger.New(logger.WithProduction("relay"))
//
// Attribute helpers return an empty slog.Attr for nil or empty values, so
// calls like logger.Error(err) are safe without explicit nil checks.
package logger
