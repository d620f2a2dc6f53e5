package cache

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// NoExpiration keeps an item until it is deleted, overwritten or evicted.
const NoExpiration time.Duration = 0

// DefaultSize bounds the number of items held by a cache created with New.
const DefaultSize = 4096

// Cache is a concurrency-safe key value store with per-item expiry.
// When full, the least recently used item is evicted.
// Stored values are replaced wholesale, never mutated in place.
type Cache struct {
	// items is safe for concurrent use.
	items *lru.Cache[string, item]

	now func() time.Time
}

type item struct {
	value     interface{}
	expiresAt time.Time
}

func (i item) isExpired(now time.Time) bool {
	return !i.expiresAt.IsZero() && now.After(i.expiresAt)
}

// New creates a new cache holding at most DefaultSize items.
func New() *Cache {
	c, err := NewWithSize(DefaultSize)
	if err != nil {
		// only returned for a non-positive size
		panic(err)
	}
	return c
}

// NewWithSize creates a new cache holding at most size items.
func NewWithSize(size int) (*Cache, error) {
	items, err := lru.New[string, item](size)
	if err != nil {
		return nil, err
	}

	return &Cache{
		items: items,
		now:   time.Now,
	}, nil
}

// Set adds an item to the cache with a specified key, value and expiration.
// An expiration of NoExpiration keeps the item until it is evicted.
func (c *Cache) Set(key string, value interface{}, expiration time.Duration) {
	var expiresAt time.Time
	if expiration > NoExpiration {
		expiresAt = c.now().Add(expiration)
	}

	c.items.Add(key, item{value: value, expiresAt: expiresAt})
}

// Get retrieves the value associated with a key from the cache.
// Returns false if the key does not exist or has expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	it, ok := c.items.Get(key)
	if !ok || it.isExpired(c.now()) {
		return nil, false
	}

	return it.value, true
}

// Delete removes an item from the cache.
func (c *Cache) Delete(key string) {
	c.items.Remove(key)
}

// Len returns the number of items held, expired ones included.
func (c *Cache) Len() int {
	return c.items.Len()
}

// DeleteExpired removes every expired item and returns how many were removed.
func (c *Cache) DeleteExpired() int {
	now := c.now()
	removed := 0
	for _, key := range c.items.Keys() {
		it, ok := c.items.Peek(key)
		if ok && it.isExpired(now) && c.items.Remove(key) {
			removed++
		}
	}
	return removed
}
