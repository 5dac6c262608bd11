package order

import "context"

//go:generate mockgen -source=interface.go -destination=mocks/usecase.go -package=mocks
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	Detail(ctx context.Context, id int64) (DetailOutput, error)
}
