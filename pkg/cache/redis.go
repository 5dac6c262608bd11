package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis stores JSON-encoded values under prefix:key with a TTL.
type Redis[V any] struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

type RedisOption func(*redisOptions)

type redisOptions struct {
	prefix string
	ttl    time.Duration
}

func WithPrefix(prefix string) RedisOption {
	return func(o *redisOptions) { o.prefix = strings.Trim(prefix, ":") }
}

func WithTTL(d time.Duration) RedisOption {
	return func(o *redisOptions) { o.ttl = d }
}

func NewRedis[V any](rdb *redis.Client, opts ...RedisOption) *Redis[V] {
	o := redisOptions{prefix: "cache", ttl: 5 * time.Minute}
	for _, opt := range opts {
		opt(&o)
	}
	return &Redis[V]{rdb: rdb, prefix: o.prefix, ttl: o.ttl}
}

func (c *Redis[V]) key(k string) string {
	return c.prefix + ":" + k
}

func (c *Redis[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var v V
	b, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return v, false, nil
	}
	if err != nil {
		return v, false, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return v, false, fmt.Errorf("%w: decode %s: %w", ErrUnavailable, key, err)
	}
	return v, true, nil
}

func (c *Redis[V]) Set(ctx context.Context, key string, v V) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, c.key(key), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}
