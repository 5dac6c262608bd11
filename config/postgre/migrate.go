package postgre

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"storefront/config"
	"storefront/migrations"
	"storefront/pkg/log"
)

// NewMigrator opens the embedded migrations of service against cfg's database.
// Callers must Close it.
func NewMigrator(service config.Service, cfg config.PostgresConfig) (*migrate.Migrate, error) {
	return NewMigratorDSN(service, cfg.DSN())
}

// NewMigratorDSN is NewMigrator for a postgres:// URL.
func NewMigratorDSN(service config.Service, dsn string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrations.FS, string(service))
	if err != nil {
		return nil, fmt.Errorf("migrate: open %s migrations: %w", service, err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, migrateURL(service, dsn))
	if err != nil {
		return nil, fmt.Errorf("migrate: connect: %w", err)
	}
	return m, nil
}

// MigrateUp applies all pending migrations. No pending change is not an error.
func MigrateUp(ctx context.Context, service config.Service, cfg config.PostgresConfig, l log.Logger) error {
	m, err := NewMigrator(service, cfg)
	if err != nil {
		return err
	}
	defer closeMigrator(ctx, m, l)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate: up: %w", err)
	}

	v, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migrate: version: %w", err)
	}
	l.Infof(ctx, "Migrations applied service=%s version=%d dirty=%t", service, v, dirty)
	return nil
}

func closeMigrator(ctx context.Context, m *migrate.Migrate, l log.Logger) {
	srcErr, dbErr := m.Close()
	if srcErr != nil || dbErr != nil {
		l.Warnf(ctx, "migrate: close: source=%v db=%v", srcErr, dbErr)
	}
}

// migrateURL swaps the scheme for the pgx/v5 migrate driver and gives each
// service its own version table, so both schemas can share a database.
func migrateURL(service config.Service, dsn string) string {
	u := "pgx5://" + strings.TrimPrefix(strings.TrimPrefix(dsn, "postgres://"), "postgresql://")
	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + "x-migrations-table=schema_migrations_" + string(service)
}
