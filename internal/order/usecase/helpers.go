package usecase

import (
	"context"
	"strconv"

	"storefront/internal/model"
)

func cacheKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

// recall reads a cached order. Cache failures count as a miss.
func (uc *implUseCase) recall(ctx context.Context, id int64) (model.Order, bool) {
	o, ok, err := uc.cache.Get(ctx, cacheKey(id))
	if err != nil {
		uc.l.Warnf(ctx, "uc.recall: %v", err)
		return model.Order{}, false
	}
	return o, ok
}

func (uc *implUseCase) remember(ctx context.Context, o model.Order) {
	if err := uc.cache.Set(ctx, cacheKey(o.ID), o); err != nil {
		uc.l.Warnf(ctx, "uc.remember: %v", err)
	}
}
