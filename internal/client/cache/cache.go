// Package cache implements the short-lived in-memory response cache used for
// idempotent reads. It is a dumb store: which calls are cacheable is decided
// by the request client, not here.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL is the freshness window applied when no TTL is configured.
const DefaultTTL = 5 * time.Minute

type entry struct {
	value      []byte
	insertedAt time.Time
}

// Cache is a TTL map keyed by a normalized request signature. Entries past
// the TTL are treated as absent and evicted lazily at read time; there is no
// background sweep.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry

	now func() time.Time // overridable in tests
}

func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached payload for key, or (nil, false) when the key is
// absent or stale. Stale entries are removed. The returned slice is a copy;
// callers may mutate it freely.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.insertedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}

	value := make([]byte, len(e.value))
	copy(value, e.value)
	return value, true
}

// Set stores the payload under key, stamping it with the current time. The
// value is copied on the way in.
func (c *Cache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	c.entries[key] = entry{value: stored, insertedAt: c.now()}
}

// Clear drops every entry. Called on sign-out and explicit refresh actions so
// stale cross-session data is never served.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
}
