package repository

import (
	"context"

	"storefront/internal/model"
)

//go:generate mockgen -source=interface.go -destination=../mocks/repository.go -package=mocks

// Repository is the composed interface for the order data store.
type Repository interface {
	OrderRepository
}

// OrderRepository defines all data access methods for the Order entity.
// GetOneOrder reports a missing row with found == false and a nil error.
type OrderRepository interface {
	CreateOrder(ctx context.Context, opt CreateOrderOptions) (model.Order, error)
	GetOneOrder(ctx context.Context, opt GetOneOrderOptions) (o model.Order, found bool, err error)
}
