// Package cache holds read-through caches for immutable records.
package cache

import (
	"context"
	"errors"
)

// ErrUnavailable wraps backend failures. Callers log it and fall back to the store.
var ErrUnavailable = errors.New("cache: backend unavailable")

// Cache maps string keys to values of V.
type Cache[V any] interface {
	Get(ctx context.Context, key string) (V, bool, error)
	Set(ctx context.Context, key string, v V) error
}

// Noop never stores anything.
type Noop[V any] struct{}

func (Noop[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	return zero, false, nil
}

func (Noop[V]) Set(ctx context.Context, key string, v V) error { return nil }
