package usecase

import (
	"storefront/internal/model"
	"storefront/internal/user/repository"
	"storefront/pkg/cache"
	"storefront/pkg/log"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo  repository.Repository
	cache cache.Cache[model.User]
	l     log.Logger
}

// New creates a new user UseCase implementation. A nil cache disables caching.
func New(repo repository.Repository, c cache.Cache[model.User], l log.Logger) *implUseCase {
	if c == nil {
		c = cache.Noop[model.User]{}
	}
	return &implUseCase{
		repo:  repo,
		cache: c,
		l:     l,
	}
}
