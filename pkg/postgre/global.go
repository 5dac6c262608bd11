package postgre

import (
	"context"
	"sync"

	"storefront/pkg/log"
)

var (
	globalMu sync.Mutex
	global   *Pool
)

// Initialize creates the process pool. Later calls return the existing pool
// until Shutdown is called.
func Initialize(ctx context.Context, connect Connector, cfg Config, l log.Logger) (*Pool, error) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if global != nil {
		return global, nil
	}

	p, err := New(ctx, connect, cfg, l)
	if err != nil {
		return nil, err
	}
	global = p
	return p, nil
}

// Shutdown closes the process pool, if any.
func Shutdown() {
	globalMu.Lock()
	p := global
	global = nil
	globalMu.Unlock()

	if p != nil {
		p.Shutdown()
	}
}
