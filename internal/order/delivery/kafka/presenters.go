package kafka

import "storefront/internal/order"

// createMessage is the JSON payload of an intake message.
type createMessage struct {
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}

func (m createMessage) toInput() order.CreateInput {
	return order.CreateInput{
		UserID:    m.UserID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
	}
}
