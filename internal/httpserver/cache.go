package httpserver

import (
	"storefront/pkg/cache"
)

// newCache builds the record cache selected by cache.backend.
func newCache[V any](srv HTTPServer, prefix string) cache.Cache[V] {
	switch srv.cacheCfg.Backend {
	case "redis":
		return cache.NewRedis[V](srv.redis, cache.WithPrefix(prefix), cache.WithTTL(srv.cacheCfg.TTL))
	case "lru":
		return cache.NewLRU[V](srv.cacheCfg.Size, srv.cacheCfg.TTL)
	default:
		return cache.Noop[V]{}
	}
}
