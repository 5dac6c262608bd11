package usecase

import (
	"context"
	"strconv"

	"storefront/internal/model"
)

func cacheKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (uc *implUseCase) recall(ctx context.Context, id int64) (model.User, bool) {
	u, ok, err := uc.cache.Get(ctx, cacheKey(id))
	if err != nil {
		uc.l.Warnf(ctx, "uc.recall: %v", err)
		return model.User{}, false
	}
	return u, ok
}

func (uc *implUseCase) remember(ctx context.Context, u model.User) {
	if err := uc.cache.Set(ctx, cacheKey(u.ID), u); err != nil {
		uc.l.Warnf(ctx, "uc.remember: %v", err)
	}
}
