package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is a small typed wrapper around ristretto keyed by string.
type Cache[T any] struct {
	impl *ristretto.Cache[string, T]
	ttl  time.Duration
}

// New creates a cache whose entries expire after ttl. A zero ttl keeps
// entries until they are evicted or deleted.
func New[T any](ttl time.Duration) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: 1e4,
		MaxCost:     1 << 10,
		BufferItems: 64,
		Cost: func(T) int64 {
			return 1
		},
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{impl: impl, ttl: ttl}, nil
}

// Get retrieves a value from the cache
func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores value and waits until it is visible to Get.
func (c *Cache[T]) Set(key string, value T) bool {
	ok := c.impl.SetWithTTL(key, value, 1, c.ttl)
	c.impl.Wait()
	return ok
}

// Delete drops key from the cache
func (c *Cache[T]) Delete(key string) {
	c.impl.Del(key)
}

// Close stops the cache's background goroutines
func (c *Cache[T]) Close() {
	c.impl.Close()
}
