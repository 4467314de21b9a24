// ABOUTME: In-memory session cache built on patrickmn/go-cache
// ABOUTME: Provides TTL expiry, a janitor for cleanup and eviction callbacks

package memory

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache implements the SessionCache interface using go-cache
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache. Entries stored with a zero
// TTL use defaultExpiration; expired entries are purged every cleanupInterval.
func NewMemoryCache(defaultExpiration, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

// Set stores a value in the cache with the given TTL
func (c *MemoryCache) Set(key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.cache.Set(key, value, ttl)
}

// Replace overwrites an existing entry and resets its TTL. It fails when
// the key is missing or expired and never creates the entry.
func (c *MemoryCache) Replace(key string, value interface{}, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	return c.cache.Replace(key, value, ttl)
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(key string) {
	c.cache.Delete(key)
}

// OnEvicted registers fn for deleted and expired entries
func (c *MemoryCache) OnEvicted(fn func(key string, value interface{})) {
	c.cache.OnEvicted(fn)
}

// Count returns the number of entries
func (c *MemoryCache) Count() int {
	return c.cache.ItemCount()
}

// Items returns the unexpired entries keyed by their cache key
func (c *MemoryCache) Items() map[string]interface{} {
	items := c.cache.Items()
	values := make(map[string]interface{}, len(items))
	for key, item := range items {
		values[key] = item.Object
	}
	return values
}

// Purge removes expired entries now instead of waiting for the janitor.
// Live entries are left alone.
func (c *MemoryCache) Purge() {
	c.cache.DeleteExpired()
}
