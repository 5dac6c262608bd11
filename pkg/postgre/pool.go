package postgre

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/puddle/v2"

	"storefront/pkg/log"
)

// Pool hands out at most MaxConns sessions at a time. Idle/in-use accounting
// lives in the underlying puddle pool; mu only guards the closed flag.
type Pool struct {
	res *puddle.Pool[Conn]
	cfg Config
	l   log.Logger

	mu     sync.RWMutex
	closed bool
}

// New dials MinConns sessions up front. Any dial failure closes what was opened
// and returns ErrConnectionSetup.
func New(ctx context.Context, connect Connector, cfg Config, l log.Logger) (*Pool, error) {
	cfg = cfg.withDefaults()
	if cfg.MinConns > cfg.MaxConns {
		return nil, fmt.Errorf("%w: min conns %d exceeds max conns %d", ErrConnectionSetup, cfg.MinConns, cfg.MaxConns)
	}
	if l == nil {
		l = log.NewNop()
	}

	res, err := puddle.NewPool(&puddle.Config[Conn]{
		Constructor: func(ctx context.Context) (Conn, error) {
			return connect(ctx)
		},
		Destructor: closeConn,
		MaxSize:    cfg.MaxConns,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionSetup, err)
	}

	for i := int32(0); i < cfg.MinConns; i++ {
		if err := res.CreateResource(ctx); err != nil {
			res.Close()
			return nil, fmt.Errorf("%w: %w", ErrConnectionSetup, err)
		}
	}

	return &Pool{res: res, cfg: cfg, l: l}, nil
}

// Acquire borrows a session, waiting at most AcquireTimeout for one to free up.
// Sessions found dead in the idle set are destroyed and replaced.
func (p *Pool) Acquire(ctx context.Context) (*Handle, error) {
	if p.isClosed() {
		return nil, ErrPoolClosed
	}

	actx, cancel := context.WithTimeout(ctx, p.cfg.AcquireTimeout)
	defer cancel()

	for {
		r, err := p.res.Acquire(actx)
		if err != nil {
			switch {
			case errors.Is(err, puddle.ErrClosedPool):
				return nil, ErrPoolClosed
			case ctx.Err() != nil:
				return nil, ctx.Err()
			case actx.Err() != nil:
				p.l.Warnf(ctx, "postgre.Acquire: exhausted after %s: max=%d", p.cfg.AcquireTimeout, p.cfg.MaxConns)
				return nil, ErrPoolExhausted
			default:
				p.l.Errorf(ctx, "postgre.Acquire: dial: %v", err)
				return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
			}
		}
		if r.Value().IsClosed() {
			r.Destroy()
			continue
		}
		return &Handle{res: r}, nil
	}
}

// Ping checks that a session can be borrowed and reaches the server.
func (p *Pool) Ping(ctx context.Context) error {
	h, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer h.Release()

	if err := h.Conn().Ping(ctx); err != nil {
		return Classify(err)
	}
	return nil
}

// Stat reports the current accounting.
func (p *Pool) Stat() Stat {
	s := p.res.Stat()
	return Stat{
		InUse: s.AcquiredResources(),
		Idle:  s.IdleResources(),
		Total: s.TotalResources(),
		Max:   s.MaxResources(),
	}
}

// Shutdown refuses new checkouts and closes every idle session before
// returning. Sessions still borrowed are closed as they are released. Safe to
// call more than once.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()

	// Idle sessions are taken out of the pool and closed here. puddle's Close
	// waits for borrowed ones, so it runs in the background.
	for _, r := range p.res.AcquireAllIdle() {
		c := r.Value()
		r.Hijack()
		closeConn(c)
	}
	go p.res.Close()
}

func closeConn(c Conn) {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	_ = c.Close(ctx)
}

func (p *Pool) isClosed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.closed
}

// Handle is a borrowed session. Only the first Release or Destroy has effect.
type Handle struct {
	res  *puddle.Resource[Conn]
	once sync.Once
}

// Conn returns the borrowed session.
func (h *Handle) Conn() Conn {
	return h.res.Value()
}

// Release returns the session to the idle set, or destroys it when the session
// has died while borrowed.
func (h *Handle) Release() {
	h.once.Do(func() {
		if h.res.Value().IsClosed() {
			h.res.Destroy()
			return
		}
		h.res.Release()
	})
}

// Destroy closes the session instead of returning it.
func (h *Handle) Destroy() {
	h.once.Do(h.res.Destroy)
}
