package repository

// CreateOrderOptions holds parameters for inserting a new Order.
type CreateOrderOptions struct {
	UserID    int64
	ProductID int64
	Quantity  int32
}

// GetOneOrderOptions selects a single Order by primary key.
type GetOneOrderOptions struct {
	ID int64
}
