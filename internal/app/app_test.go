package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storefront/config"
	"storefront/pkg/log"
	pkgPostgre "storefront/pkg/postgre"
)

func unreachablePostgres() config.PostgresConfig {
	return config.PostgresConfig{
		Host: "127.0.0.1", Port: 1, DBName: "orderdb",
		User: "postgres", Password: "postgres", SSLMode: "disable",
		MinConns: 1, MaxConns: 1, AcquireTimeout: time.Second,
	}
}

func TestRunConsumer_ConnectionSetupFailed(t *testing.T) {
	cfg := &config.Config{Postgres: unreachablePostgres()}

	err := RunConsumer(context.Background(), cfg, log.NewNop())
	require.ErrorIs(t, err, pkgPostgre.ErrConnectionSetup)
}

func TestRunAPI_ConnectionSetupFailed(t *testing.T) {
	cfg := &config.Config{Postgres: unreachablePostgres()}

	err := RunAPI(context.Background(), config.ServiceOrder, cfg, log.NewNop())
	require.ErrorIs(t, err, pkgPostgre.ErrConnectionSetup)
}
