package postgre

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/model"
	"storefront/internal/user"
	repo "storefront/internal/user/repository"
	pkgPostgre "storefront/pkg/postgre"
)

const userColumns = `id, email, name, created_at`

// CreateUser inserts a new User row and returns it.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	const query = `
		INSERT INTO users (email, name)
		VALUES ($1, $2)
		RETURNING ` + userColumns

	var u model.User
	err := r.db.WithTx(ctx, func(ctx context.Context, tx *pkgPostgre.Tx) error {
		rows, err := tx.Query(ctx, query, opt.Email, opt.Name)
		if err != nil {
			return err
		}
		rec, ok, err := pkgPostgre.CollectOne[model.User](rows)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: insert returned no row", pkgPostgre.ErrMalformedRow)
		}
		u = rec
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		if errors.Is(err, pkgPostgre.ErrDuplicateKey) {
			return model.User{}, fmt.Errorf("%w (email=%s): %w", user.ErrDuplicateKey, opt.Email, err)
		}
		return model.User{}, err
	}

	r.l.Infof(ctx, "%s: created user_id=%d", r.dsn("CreateUser"), u.ID)
	return u, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
// A missing row is reported with found == false, never as an error.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, bool, error) {
	mods, args, err := r.buildGetOneQuery(opt)
	if err != nil {
		return model.User{}, false, err
	}
	query := fmt.Sprintf("SELECT %s FROM users WHERE %s", userColumns, mods)

	var (
		u     model.User
		found bool
	)
	err = r.db.WithTx(ctx, func(ctx context.Context, tx *pkgPostgre.Tx) error {
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		u, found, err = pkgPostgre.CollectOne[model.User](rows)
		return err
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, false, err
	}
	return u, found, nil
}
