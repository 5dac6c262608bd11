package middleware

import (
	"storefront/config"
	"storefront/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New builds the shared middleware set. A disabled rate limit yields a
// pass-through RateLimit.
func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	mw := Middleware{l: l}
	if cfg.Enabled {
		mw.limiter = newRateLimiter(cfg.RPS, cfg.Burst, cfg.Clients)
	}
	return mw
}
