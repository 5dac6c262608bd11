package usecase

import (
	"context"

	"storefront/internal/order"
	repo "storefront/internal/order/repository"
)

// Detail retrieves a single Order by ID. Returns ErrNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (order.DetailOutput, error) {
	if o, ok := uc.recall(ctx, id); ok {
		return order.DetailOutput{Order: o}, nil
	}

	o, found, err := uc.repo.GetOneOrder(ctx, repo.GetOneOrderOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneOrder: %v", err)
		return order.DetailOutput{}, err
	}
	if !found {
		return order.DetailOutput{}, order.ErrNotFound
	}

	uc.remember(ctx, o)
	return order.DetailOutput{Order: o}, nil
}
