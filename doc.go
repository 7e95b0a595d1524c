// Package relay provides the asynchronous delivery subsystem for
// simulation telemetry: a queued single-worker HTTP dispatcher with URL
// validation and typed failure reporting (core/dispatch), and a
// discovery-status resolver that consults external lookup services with
// per-system memoization (core/discovery).
//
// Payload construction and settings management live with the embedding
// application; this module only moves payloads to the wire and answers
// discovery lookups. Components are constructed explicitly and injected —
// there are no package-level singletons.
package relay
