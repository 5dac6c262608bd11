package postgre

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/model"
	"storefront/internal/order"
	repo "storefront/internal/order/repository"
	pkgPostgre "storefront/pkg/postgre"
)

const orderColumns = `id, user_id, product_id, quantity, status, created_at`

// CreateOrder inserts a new Order row with status "created" and returns it.
func (r *implRepository) CreateOrder(ctx context.Context, opt repo.CreateOrderOptions) (model.Order, error) {
	const query = `
		INSERT INTO orders (user_id, product_id, quantity, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + orderColumns

	var o model.Order
	err := r.db.WithTx(ctx, func(ctx context.Context, tx *pkgPostgre.Tx) error {
		rows, err := tx.Query(ctx, query, opt.UserID, opt.ProductID, opt.Quantity, string(model.OrderStatusCreated))
		if err != nil {
			return err
		}
		rec, ok, err := pkgPostgre.CollectOne[model.Order](rows)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: insert returned no row", pkgPostgre.ErrMalformedRow)
		}
		o = rec
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: user_id=%d product_id=%d: %v", r.dsn("CreateOrder"), opt.UserID, opt.ProductID, err)
		return model.Order{}, r.mapError(err, opt)
	}

	r.l.Infof(ctx, "%s: created order_id=%d user_id=%d", r.dsn("CreateOrder"), o.ID, o.UserID)
	return o, nil
}

// GetOneOrder retrieves a single Order. A missing row is reported with
// found == false, never as an error.
func (r *implRepository) GetOneOrder(ctx context.Context, opt repo.GetOneOrderOptions) (model.Order, bool, error) {
	mods, args, err := r.buildGetOneQuery(opt)
	if err != nil {
		return model.Order{}, false, err
	}
	query := fmt.Sprintf("SELECT %s FROM orders WHERE %s", orderColumns, mods)

	var (
		o     model.Order
		found bool
	)
	err = r.db.WithTx(ctx, func(ctx context.Context, tx *pkgPostgre.Tx) error {
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		o, found, err = pkgPostgre.CollectOne[model.Order](rows)
		return err
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: id=%d: %v", r.dsn("GetOneOrder"), opt.ID, err)
		return model.Order{}, false, err
	}
	return o, found, nil
}

// mapError translates constraint violations into order domain errors, echoing
// the offending input. Other errors are already classified by the pool.
func (r *implRepository) mapError(err error, opt repo.CreateOrderOptions) error {
	switch {
	case errors.Is(err, pkgPostgre.ErrDuplicateKey):
		return fmt.Errorf("%w (user_id=%d, product_id=%d): %w", order.ErrDuplicateKey, opt.UserID, opt.ProductID, err)
	case errors.Is(err, pkgPostgre.ErrInvalidReference):
		return fmt.Errorf("%w (user_id=%d, product_id=%d): %w", order.ErrInvalidReference, opt.UserID, opt.ProductID, err)
	default:
		return err
	}
}
