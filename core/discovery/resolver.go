package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/stellarlog/relay/core/logger"
)

// Source tags for results that did not come from a confirming provider.
const (
	// SourceJournal marks a result taken from the journal hint because
	// lookups are disabled.
	SourceJournal = "journal"

	// SourceJournalFallback marks a result taken from the journal hint
	// after every provider came back unconfirmed.
	SourceJournalFallback = "journal_fallback"

	// SourceNoneFound marks an unconfirmed result with no hint to fall
	// back on.
	SourceNoneFound = "none found"

	// SourceUnavailable marks the degraded result returned when no
	// lookup client is wired.
	SourceUnavailable = "no lookup available"
)

// Resolver answers discovery-status queries with per-system memoization.
// Safe for concurrent use; racing resolutions of the same key compute the
// same value and the first cache write wins.
type Resolver struct {
	enabled   bool
	getter    Getter
	providers []Provider
	cache     CacheStore
	logger    *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger for internal operations.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.logger = log
		}
	}
}

// WithCacheStore replaces the default in-memory store, e.g. with the
// Redis-backed store from integration/cache/redis.
func WithCacheStore(store CacheStore) Option {
	return func(r *Resolver) {
		if store != nil {
			r.cache = store
		}
	}
}

// WithProviders replaces the default provider set. Providers are queried
// in the given order.
func WithProviders(providers ...Provider) Option {
	return func(r *Resolver) {
		if len(providers) > 0 {
			r.providers = providers
		}
	}
}

// New creates a Resolver backed by the given lookup client. A nil getter
// is tolerated: every resolution then degrades to (false, "no lookup
// available") with a warning.
func New(cfg Config, getter Getter, opts ...Option) *Resolver {
	r := &Resolver{
		enabled: cfg.Enabled,
		getter:  getter,
		cache:   NewMemoryStore(),
		logger:  logger.Discard(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if len(r.providers) == 0 && getter != nil {
		r.providers = []Provider{
			NewEDSMProvider(cfg.EDSMSystemURL, getter, r.logger),
			NewSpanshProvider(cfg.SpanshSystemURL, getter, r.logger),
			NewEdastroProvider(cfg.EdastroSystemURL, getter, r.logger),
		}
	}

	return r
}

// Resolve reports whether the system has been discovered and which
// source(s) confirmed it. journalHint is the producer-supplied fallback;
// nil means no hint. Never returns an error: provider failures degrade to
// "not confirmed" and cache failures degrade to a miss.
func (r *Resolver) Resolve(ctx context.Context, systemName string, systemAddress int64, journalHint *bool) (bool, string) {
	if !r.enabled {
		r.logger.DebugContext(ctx, "system lookup disabled, using journal hint",
			logger.Component("discovery"),
			logger.System(systemName))
		return hintOrFalse(journalHint), SourceJournal
	}

	if r.getter == nil {
		r.logger.WarnContext(ctx, "no lookup client available",
			logger.Component("discovery"),
			logger.System(systemName))
		return false, SourceUnavailable
	}

	key := cacheKey(systemName, systemAddress)

	if entry, ok, err := r.cache.Get(ctx, key); err != nil {
		r.logger.DebugContext(ctx, "cache read failed, treating as miss",
			logger.Component("discovery"),
			logger.Key("cache_key", key),
			logger.Error(err))
	} else if ok {
		r.logger.DebugContext(ctx, "using cached discovery status",
			logger.Component("discovery"),
			logger.System(systemName),
			logger.Source(entry.Source))
		return entry.Discovered, entry.Source
	}

	var confirmed []string
	for _, p := range r.providers {
		if p.Lookup(ctx, systemName, systemAddress) {
			confirmed = append(confirmed, p.Name())
		}
	}

	entry := Entry{
		Discovered: len(confirmed) > 0,
		Source:     strings.Join(confirmed, ","),
	}
	if !entry.Discovered {
		if journalHint != nil {
			entry.Discovered = *journalHint
			entry.Source = SourceJournalFallback
		} else {
			entry.Source = SourceNoneFound
		}
	}

	if err := r.cache.Set(ctx, key, entry); err != nil {
		r.logger.DebugContext(ctx, "cache write failed, result not memoized",
			logger.Component("discovery"),
			logger.Key("cache_key", key),
			logger.Error(err))
	}

	r.logger.InfoContext(ctx, "resolved discovery status",
		logger.Component("discovery"),
		logger.System(systemName),
		logger.Key("discovered", entry.Discovered),
		logger.Source(entry.Source))
	return entry.Discovered, entry.Source
}

func cacheKey(systemName string, systemAddress int64) string {
	return fmt.Sprintf("%s_%d", systemName, systemAddress)
}

func hintOrFalse(hint *bool) bool {
	return hint != nil && *hint
}
