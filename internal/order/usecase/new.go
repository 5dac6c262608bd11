package usecase

import (
	"storefront/internal/model"
	"storefront/internal/order/repository"
	"storefront/pkg/cache"
	"storefront/pkg/log"
)

// implUseCase is the private implementation of order.UseCase.
type implUseCase struct {
	repo  repository.Repository
	cache cache.Cache[model.Order]
	l     log.Logger
}

// New creates a new order UseCase implementation. A nil cache disables caching.
func New(repo repository.Repository, c cache.Cache[model.Order], l log.Logger) *implUseCase {
	if c == nil {
		c = cache.Noop[model.Order]{}
	}
	return &implUseCase{
		repo:  repo,
		cache: c,
		l:     l,
	}
}
