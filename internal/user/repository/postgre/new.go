package postgre

import (
	"fmt"

	"storefront/internal/user/repository"
	"storefront/pkg/log"
	pkgPostgre "storefront/pkg/postgre"
)

type implRepository struct {
	db *pkgPostgre.Pool
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the user domain.
func New(db *pkgPostgre.Pool, l log.Logger) repository.Repository {
	if db == nil {
		panic("user/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/postgre.%s", method)
}
