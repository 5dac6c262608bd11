package postgretest

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5"

	"storefront/config"
	configPostgre "storefront/config/postgre"
	"storefront/pkg/postgre"
)

// EnvDatabaseURL names the variable that enables tests against a live server.
const EnvDatabaseURL = "TEST_DATABASE_URL"

// Live opens a pool on $TEST_DATABASE_URL, applies the service's migrations and
// empties table. The test is skipped when the variable is unset.
func Live(t *testing.T, service config.Service, table string, maxConns int32) *postgre.Pool {
	t.Helper()
	dsn := os.Getenv(EnvDatabaseURL)
	if dsn == "" {
		t.Skipf("%s not set", EnvDatabaseURL)
	}

	m, err := configPostgre.NewMigratorDSN(service, dsn)
	if err != nil {
		t.Fatalf("migrator: %v", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("migrate up: %v", err)
	}
	_, _ = m.Close()

	connCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		t.Fatalf("parse %s: %v", EnvDatabaseURL, err)
	}
	ctx := context.Background()
	p, err := postgre.New(ctx, postgre.PgxConnector(connCfg), postgre.Config{MinConns: 1, MaxConns: maxConns}, nil)
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	t.Cleanup(p.Shutdown)

	err = p.WithTx(ctx, func(ctx context.Context, tx *postgre.Tx) error {
		rows, err := tx.Query(ctx, "TRUNCATE "+pgx.Identifier{table}.Sanitize()+" RESTART IDENTITY")
		if err != nil {
			return err
		}
		rows.Close()
		return rows.Err()
	})
	if err != nil {
		t.Fatalf("truncate %s: %v", table, err)
	}
	return p
}
