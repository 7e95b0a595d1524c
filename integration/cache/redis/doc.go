// Package redis provides Redis client initialization with connection
// verification and a Redis-backed discovery cache store.
//
// Connect validates the connection URL, dials with backoff-retried pings,
// and returns a ready client. Store adapts that client to the
// discovery.CacheStore interface so multiple processes can share
// memoized discovery results. Entries are written with SETNX and no TTL,
// preserving the write-once, no-expiry cache semantics.
//
// Usage:
//
//	client, err := redis.Connect(ctx, redis.Config{
//		ConnectionURL: "redis://localhost:6379/0",
//	})
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	resolver := discovery.New(cfg, dispatchClient,
//		discovery.WithCacheStore(redis.NewStore(client)),
//	)
package redis
