package postgre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"storefront/config"
	"storefront/pkg/log"
	pkgPostgre "storefront/pkg/postgre"
)

// Connect creates the process connection pool and verifies it with a ping.
func Connect(ctx context.Context, cfg config.PostgresConfig, l log.Logger) (*pkgPostgre.Pool, error) {
	connCfg, err := pgx.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("postgres: parse config: %w", err)
	}

	l.Infof(ctx, "Connecting to PostgreSQL host=%s port=%d db=%s user=%s min_conns=%d max_conns=%d",
		cfg.Host, cfg.Port, cfg.DBName, cfg.User, cfg.MinConns, cfg.MaxConns)

	pool, err := pkgPostgre.Initialize(ctx, pkgPostgre.PgxConnector(connCfg), pkgPostgre.Config{
		MinConns:       cfg.MinConns,
		MaxConns:       cfg.MaxConns,
		AcquireTimeout: cfg.AcquireTimeout,
	}, l)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pkgPostgre.Shutdown()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	l.Infof(ctx, "PostgreSQL connected host=%s db=%s", cfg.Host, cfg.DBName)
	return pool, nil
}

// Disconnect closes the process connection pool.
func Disconnect(ctx context.Context, l log.Logger) {
	pkgPostgre.Shutdown()
	l.Info(ctx, "PostgreSQL pool closed")
}
