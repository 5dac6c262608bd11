package order

import "errors"

var (
	ErrNotFound         = errors.New("order not found")
	ErrDuplicateKey     = errors.New("order violates unique constraint")
	ErrInvalidReference = errors.New("order references a missing record")
	ErrInvalidPayload   = errors.New("invalid payload")
)
