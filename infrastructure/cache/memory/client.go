// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Memoizes page lookups for the lifetime of a single build run

package memory

import (
	"context"
	"errors"
	"time"

	"github.com/patrickmn/go-cache"
)

// ErrCacheMiss is returned when a key is absent or expired
var ErrCacheMiss = errors.New("cache: key not found")

// MemoryCache implements the Cache interface using go-cache
type MemoryCache struct {
	cache *cache.Cache
}

// NewMemoryCache creates a cache whose entries never expire by default.
// cleanupInterval controls how often expired entries are purged; zero disables purging.
func NewMemoryCache(cleanupInterval time.Duration) *MemoryCache {
	return &MemoryCache{cache: cache.New(cache.NoExpiration, cleanupInterval)}
}

// Get retrieves a copy of the value stored under key
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	val, found := c.cache.Get(key)
	if !found {
		return nil, ErrCacheMiss
	}

	stored, ok := val.([]byte)
	if !ok {
		return nil, ErrCacheMiss
	}

	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a copy of value. A zero ttl keeps the value for the cache lifetime.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	expiration := ttl
	if ttl <= 0 {
		expiration = cache.NoExpiration
	}
	c.cache.Set(key, valueCopy, expiration)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.cache.Delete(key)
	return nil
}

// Len reports the number of stored entries, including ones not yet purged
func (c *MemoryCache) Len() int {
	return c.cache.ItemCount()
}
