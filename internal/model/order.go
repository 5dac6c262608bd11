package model

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusCreated is assigned on insert.
	OrderStatusCreated OrderStatus = "created"
)

// Order is a persisted order row. Records are never mutated after insert.
type Order struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	ProductID int64     `db:"product_id"`
	Quantity  int32     `db:"quantity"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}
