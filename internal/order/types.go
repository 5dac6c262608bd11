package order

import "storefront/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	UserID    int64
	ProductID int64
	Quantity  int32
}

// Validate applies the same rules as the HTTP binding tags, for callers that
// bypass gin (the intake consumer).
func (in CreateInput) Validate() error {
	if in.UserID <= 0 || in.ProductID <= 0 || in.Quantity <= 0 {
		return ErrInvalidPayload
	}
	return nil
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Order model.Order
}

type DetailOutput struct {
	Order model.Order
}
