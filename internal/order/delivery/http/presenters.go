package http

import (
	"time"

	"storefront/internal/model"
	"storefront/internal/order"
)

// --- Request DTOs ---

type createReq struct {
	UserID    int64 `json:"user_id"    binding:"required,gt=0"`
	ProductID int64 `json:"product_id" binding:"required,gt=0"`
	Quantity  int32 `json:"quantity"   binding:"required,gt=0"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() order.CreateInput {
	return order.CreateInput{
		UserID:    r.UserID,
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
	}
}

// ---

type detailReq struct {
	ID int64 `uri:"id" binding:"required,gt=0"`
}

// --- Response DTOs ---

// orderResp exposes the primary key as order_id.
type orderResp struct {
	OrderID   int64     `json:"order_id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int32     `json:"quantity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func newOrderResp(o model.Order) orderResp {
	return orderResp{
		OrderID:   o.ID,
		UserID:    o.UserID,
		ProductID: o.ProductID,
		Quantity:  o.Quantity,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}

func (h *handler) newCreateResp(out order.CreateOutput) orderResp {
	return newOrderResp(out.Order)
}

func (h *handler) newDetailResp(out order.DetailOutput) orderResp {
	return newOrderResp(out.Order)
}
