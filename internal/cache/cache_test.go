// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

package cache

import (
	"net/url"
	"testing"
	"time"
)

func TestTTLCacheBasicOperations(t *testing.T) {
	c := NewTTL(1 * time.Minute)

	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Error("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Expected value1, got %v", value)
	}

	_, exists = c.Get("key2")
	if exists {
		t.Error("Expected key2 to not exist")
	}
}

func TestTTLCacheExpiration(t *testing.T) {
	c := NewTTL(50 * time.Millisecond)

	c.Set("key1", "value1")

	if _, exists := c.Get("key1"); !exists {
		t.Error("Expected key1 to exist immediately after set")
	}

	time.Sleep(80 * time.Millisecond)

	if _, exists := c.Get("key1"); exists {
		t.Error("Expected key1 to be expired")
	}
}

func TestTTLCacheOverwrite(t *testing.T) {
	c := NewTTL(1 * time.Minute)

	c.Set("key1", "old")
	c.Set("key1", "new")

	value, _ := c.Get("key1")
	if value != "new" {
		t.Errorf("Expected overwritten value, got %v", value)
	}
}

func TestTTLCacheStats(t *testing.T) {
	c := NewTTL(1 * time.Minute)

	c.Set("key1", "value1")
	c.Get("key1") // hit
	c.Get("key2") // miss
	c.Get("key1") // hit

	stats := c.Stats()
	if stats.Hits != 2 {
		t.Errorf("Expected 2 hits, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("Expected 1 miss, got %d", stats.Misses)
	}

	hitRate := stats.HitRate()
	want := 100.0 * 2 / 3
	if hitRate < want-0.01 || hitRate > want+0.01 {
		t.Errorf("Expected hit rate around %.2f%%, got %.2f%%", want, hitRate)
	}
}

func TestTTLCacheClear(t *testing.T) {
	c := NewTTL(1 * time.Minute)

	c.Set("key1", "value1")
	c.Set("key2", "value2")
	c.Clear()

	for _, key := range []string{"key1", "key2"} {
		if _, exists := c.Get(key); exists {
			t.Errorf("Expected %s to be cleared", key)
		}
	}
}

func TestLRUCacheEvictsOldest(t *testing.T) {
	c := NewLRU(2, 1*time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // a is now most recently used
	c.Set("c", 3)

	if _, exists := c.Get("b"); exists {
		t.Error("Expected b (least recently used) to be evicted")
	}
	if _, exists := c.Get("a"); !exists {
		t.Error("Expected a to survive eviction")
	}
	if _, exists := c.Get("c"); !exists {
		t.Error("Expected c to be present")
	}
	if c.Len() != 2 {
		t.Errorf("Expected 2 entries, got %d", c.Len())
	}
}

func TestLRUCacheExpiration(t *testing.T) {
	c := NewLRU(10, 50*time.Millisecond)

	c.Set("key1", "value1")
	time.Sleep(80 * time.Millisecond)

	if _, exists := c.Get("key1"); exists {
		t.Error("Expected key1 to be expired")
	}
}

func TestLRUCacheUpdateMovesToFront(t *testing.T) {
	c := NewLRU(2, 1*time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 10) // refresh a
	c.Set("c", 3)  // should evict b

	if _, exists := c.Get("b"); exists {
		t.Error("Expected b to be evicted after a was refreshed")
	}
	value, _ := c.Get("a")
	if value != 10 {
		t.Errorf("Expected updated value 10, got %v", value)
	}
}

func TestNewSelectsImplementation(t *testing.T) {
	if _, ok := New(Config{TTL: time.Minute}).(*TTLCache); !ok {
		t.Error("Expected unbounded config to select TTLCache")
	}
	if _, ok := New(Config{TTL: time.Minute, Capacity: 100}).(*LRUCache); !ok {
		t.Error("Expected bounded config to select LRUCache")
	}
}

func TestKeyDeterministicOrdering(t *testing.T) {
	a := url.Values{}
	a.Set("sort_by", "popularity.desc")
	a.Set("page", "1")

	b := url.Values{}
	b.Set("page", "1")
	b.Set("sort_by", "popularity.desc")

	if Key("/discover/movie", a) != Key("/discover/movie", b) {
		t.Error("Expected identical keys regardless of parameter insertion order")
	}
}

func TestKeyWithoutParams(t *testing.T) {
	if got := Key("/trending/movie/week", nil); got != "/trending/movie/week" {
		t.Errorf("Expected bare endpoint key, got %q", got)
	}
}

func TestKeyDistinguishesEndpoints(t *testing.T) {
	params := url.Values{"page": {"1"}}
	if Key("/movie/popular", params) == Key("/movie/top_rated", params) {
		t.Error("Expected different endpoints to produce different keys")
	}
}
