// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

// Package cache provides in-memory caches for upstream catalog responses.
//
// Two implementations are available behind the Cacher interface: a plain
// TTL cache and an LRU-bounded TTL cache. The TMDB client defaults to the
// LRU variant so that memory stays bounded under sustained load; the plain
// TTL cache is kept for workloads where the key space is known to be small.
package cache

import "time"

// Cacher is the caching contract the TMDB client depends on. The cache is
// injected at construction so tests can substitute their own implementation
// and each client instance owns its cache.
type Cacher interface {
	// Get retrieves a value from the cache.
	// Returns the value and true if found and not expired.
	Get(key string) (interface{}, bool)

	// Set stores a value in the cache with the default TTL.
	Set(key string, value interface{})

	// SetWithTTL stores a value with a custom TTL.
	SetWithTTL(key string, value interface{}, ttl time.Duration)

	// Delete removes a value from the cache.
	Delete(key string)

	// Clear removes all entries from the cache.
	Clear()

	// Stats returns a snapshot of cache statistics.
	Stats() Stats
}

// Stats is a snapshot of cache performance counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Entries   int
}

// HitRate returns the hit rate as a percentage.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0.0
	}
	return float64(s.Hits) / float64(total) * 100.0
}

// Config holds configuration for creating a cache.
type Config struct {
	// TTL is the default time-to-live for cache entries.
	TTL time.Duration

	// Capacity is the maximum number of entries. Zero means unbounded,
	// which selects the plain TTL implementation.
	Capacity int
}

// New creates a cache based on the configuration.
func New(cfg Config) Cacher {
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}
	if cfg.Capacity > 0 {
		return NewLRU(cfg.Capacity, cfg.TTL)
	}
	return NewTTL(cfg.TTL)
}

// Verify interface implementations at compile time
var (
	_ Cacher = (*TTLCache)(nil)
	_ Cacher = (*LRUCache)(nil)
)
