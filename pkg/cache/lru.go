package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// LRU is an in-process cache bounded by size and entry TTL.
type LRU[V any] struct {
	entries *expirable.LRU[string, V]
}

// NewLRU creates an LRU holding at most size entries, each for ttl.
func NewLRU[V any](size int, ttl time.Duration) *LRU[V] {
	return &LRU[V]{
		entries: expirable.NewLRU[string, V](size, nil, ttl),
	}
}

func (c *LRU[V]) Get(ctx context.Context, key string) (V, bool, error) {
	v, ok := c.entries.Get(key)
	return v, ok, nil
}

func (c *LRU[V]) Set(ctx context.Context, key string, v V) error {
	c.entries.Add(key, v)
	return nil
}

// Len reports the number of live entries.
func (c *LRU[V]) Len() int {
	return c.entries.Len()
}
