// Package cache provides an append-only memoization store for pure
// construction functions.
//
// Unlike an eviction cache, a Store keeps every entry for the life of the
// process: construction is deterministic and memoization exists to avoid
// rebuilding identical geometry, not to bound memory. The store is
// intentionally unsynchronized — authoring sessions are single-threaded by
// contract, and concurrent use would need external locking.
package cache

// Store is an append-only memoization table with hit/miss statistics.
type Store[K comparable, V any] struct {
	entries map[K]V

	hits   uint64
	misses uint64
}

// New creates an empty store.
func New[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{
		entries: make(map[K]V),
	}
}

// Get retrieves a stored value by key.
// Returns (value, true) if present, (zero, false) otherwise.
func (s *Store[K, V]) Get(key K) (V, bool) {
	v, ok := s.entries[key]
	if ok {
		s.hits++
	} else {
		s.misses++
	}
	return v, ok
}

// GetOrCreate returns the stored value for key, invoking create and
// storing its result on first use. The create function runs at most once
// per key for the store's lifetime.
func (s *Store[K, V]) GetOrCreate(key K, create func() V) V {
	if v, ok := s.entries[key]; ok {
		s.hits++
		return v
	}
	s.misses++
	v := create()
	s.entries[key] = v
	return v
}

// Len returns the number of stored entries.
func (s *Store[K, V]) Len() int {
	return len(s.entries)
}

// Stats reports current cache statistics.
type Stats struct {
	Len     int
	Hits    uint64
	Misses  uint64
	HitRate float64
}

// Stats returns a snapshot of the store's counters.
func (s *Store[K, V]) Stats() Stats {
	var hitRate float64
	if total := s.hits + s.misses; total > 0 {
		hitRate = float64(s.hits) / float64(total)
	}
	return Stats{
		Len:     len(s.entries),
		Hits:    s.hits,
		Misses:  s.misses,
		HitRate: hitRate,
	}
}
