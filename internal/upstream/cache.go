package upstream

import (
	"sync"
	"time"
)

// Cache is a TTL-bounded response cache keyed by (year, endpoint). It is
// injected into the client rather than living as a process-wide singleton,
// so the analytics core and its tests never depend on global state.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

type cacheEntry struct {
	payload   []byte
	expiresAt time.Time
}

// NewCache creates a cache with the given time-to-live. A zero TTL disables
// caching entirely.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached payload for the key if present and unexpired.
func (c *Cache) Get(key string) ([]byte, bool) {
	if c == nil || c.ttl == 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.payload, true
}

// Set stores a payload under the key with the configured TTL.
func (c *Cache) Set(key string, payload []byte) {
	if c == nil || c.ttl == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		payload:   payload,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Len returns the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
