// Package cache provides a bounded, generic LRU cache. It generalizes the
// teacher's unbounded map-backed topic cache to a fixed capacity so a
// long-lived Client never grows an internal cache without limit.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a bounded key/value store; once Size entries are held, adding one
// more evicts the least recently used entry.
type Cache[K comparable, V any] struct {
	inner *lru.Cache[K, V]
}

// New builds a Cache holding at most size entries. size must be positive.
func New[K comparable, V any](size int) (*Cache[K, V], error) {
	inner, err := lru.New[K, V](size)
	if err != nil {
		return nil, err
	}
	return &Cache[K, V]{inner: inner}, nil
}

// Get returns the cached value for key, if present.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	return c.inner.Get(key)
}

// Set stores value under key, evicting the least recently used entry if the
// cache is already at capacity.
func (c *Cache[K, V]) Set(key K, value V) {
	c.inner.Add(key, value)
}

// Remove evicts key, if present.
func (c *Cache[K, V]) Remove(key K) {
	c.inner.Remove(key)
}

// Purge empties the cache.
func (c *Cache[K, V]) Purge() {
	c.inner.Purge()
}

// Len reports the number of entries currently cached.
func (c *Cache[K, V]) Len() int {
	return c.inner.Len()
}
