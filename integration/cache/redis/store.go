package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/stellarlog/relay/core/discovery"
)

const defaultKeyPrefix = "discovery:"

// Store adapts a Redis client to the discovery.CacheStore interface.
// Entries are JSON-encoded, written with SETNX so the first resolution
// wins across processes, and never expire.
type Store struct {
	client *redis.Client
	prefix string
}

var _ discovery.CacheStore = (*Store)(nil)

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithKeyPrefix overrides the default "discovery:" key prefix.
func WithKeyPrefix(prefix string) StoreOption {
	return func(s *Store) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// NewStore creates a discovery cache store backed by the given client.
func NewStore(client *redis.Client, opts ...StoreOption) *Store {
	s := &Store{
		client: client,
		prefix: defaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the cached entry for key, if any.
func (s *Store) Get(ctx context.Context, key string) (discovery.Entry, bool, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return discovery.Entry{}, false, nil
	}
	if err != nil {
		return discovery.Entry{}, false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	var entry discovery.Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return discovery.Entry{}, false, fmt.Errorf("failed to decode cache entry: %w", err)
	}
	return entry, true, nil
}

// Set stores the entry for key unless one already exists. No TTL: cached
// decisions are permanent.
func (s *Store) Set(ctx context.Context, key string, entry discovery.Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	if err := s.client.SetNX(ctx, s.prefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}
