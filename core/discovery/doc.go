// Package discovery resolves whether a star system has already been
// discovered by consulting independent read-only lookup providers and
// memoizing the aggregate answer per system.
//
// Providers are queried in a fixed order over the dispatch client's
// synchronous GET path. Each provider interprets its response with its
// own predicate; a provider failure (network error, non-200, malformed
// body) simply reads as "not confirmed by this provider" and never
// propagates to the caller. When no provider confirms, the resolver falls
// back to the journal-supplied hint.
//
// Results are cached per (systemName, systemAddress) key for the process
// lifetime — no expiry, no invalidation. The default store is an
// in-memory map; integration/cache/redis provides a shared store for
// multi-process deployments.
//
// Basic usage:
//
//	resolver := discovery.New(discovery.DefaultConfig(), client,
//		discovery.WithLogger(log),
//	)
//
//	discovered, source := resolver.Resolve(ctx, "Sol", 10477373803, journalHint)
package discovery
