package usecase

import (
	"context"

	"storefront/internal/order"
	repo "storefront/internal/order/repository"
)

// Create persists a new order with status "created".
func (uc *implUseCase) Create(ctx context.Context, input order.CreateInput) (order.CreateOutput, error) {
	if err := input.Validate(); err != nil {
		return order.CreateOutput{}, err
	}

	o, err := uc.repo.CreateOrder(ctx, repo.CreateOrderOptions{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateOrder: %v", err)
		return order.CreateOutput{}, err
	}

	uc.remember(ctx, o)
	return order.CreateOutput{Order: o}, nil
}
