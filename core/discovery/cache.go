package discovery

import (
	"context"
	"sync"
)

// Entry is a memoized discovery decision. Immutable once cached: the
// value for a given key never changes within a process run.
type Entry struct {
	Discovered bool   `json:"discovered"`
	Source     string `json:"source"`
}

// CacheStore abstracts the memoization backend. Implementations must
// tolerate concurrent readers and racing first writes for the same key;
// the first write wins and later writes for the same key are ignored.
type CacheStore interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, entry Entry) error
}

// MemoryStore is the default CacheStore: a mutex-guarded map that grows
// for the life of the process. Unbounded by design — there is no eviction
// in the resolution semantics.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryStore creates an empty in-memory cache store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

// Get returns the cached entry for key, if any.
func (s *MemoryStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[key]
	return entry, ok, nil
}

// Set stores the entry for key. Existing entries are not overwritten so
// the first resolution wins.
func (s *MemoryStore) Set(ctx context.Context, key string, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok {
		s.entries[key] = entry
	}
	return nil
}

// Len returns the number of cached entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
