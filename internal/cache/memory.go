package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/termtrack/termtrack/internal/model"
)

// MemoryCache implements Cache on an in-memory TTL store
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a memory cache with the given default TTL and
// expired-entry cleanup interval.
func NewMemoryCache(defaultTTL, cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves cached items for a key
func (c *MemoryCache) Get(key string) ([]model.Item, bool) {
	if val, found := c.cache.Get(key); found {
		return val.([]model.Item), true
	}
	return nil, false
}

// Set stores items under a key with the given TTL
func (c *MemoryCache) Set(key string, items []model.Item, ttl time.Duration) {
	c.cache.Set(key, items, ttl)
}

// Clear removes all cached results
func (c *MemoryCache) Clear() {
	c.cache.Flush()
}
