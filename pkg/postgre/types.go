package postgre

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

const (
	DefaultMinConns       int32 = 1
	DefaultMaxConns       int32 = 10
	DefaultAcquireTimeout       = 5 * time.Second

	rollbackTimeout = 5 * time.Second
	closeTimeout    = 5 * time.Second
)

// Conn is one live database session. *pgx.Conn satisfies it.
type Conn interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	IsClosed() bool
}

// Connector dials a new session.
type Connector func(ctx context.Context) (Conn, error)

// Config bounds the pool.
type Config struct {
	MinConns       int32
	MaxConns       int32
	AcquireTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.MinConns <= 0 {
		c.MinConns = DefaultMinConns
	}
	if c.MaxConns <= 0 {
		c.MaxConns = DefaultMaxConns
	}
	if c.AcquireTimeout <= 0 {
		c.AcquireTimeout = DefaultAcquireTimeout
	}
	return c
}

// Stat is a snapshot of pool accounting.
type Stat struct {
	InUse int32
	Idle  int32
	Total int32
	Max   int32
}

// PgxConnector dials sessions with pgx using a config produced by pgx.ParseConfig.
func PgxConnector(cfg *pgx.ConnConfig) Connector {
	return func(ctx context.Context) (Conn, error) {
		return pgx.ConnectConfig(ctx, cfg.Copy())
	}
}
