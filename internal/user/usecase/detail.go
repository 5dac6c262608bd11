package usecase

import (
	"context"

	"storefront/internal/user"
	repo "storefront/internal/user/repository"
)

// Detail retrieves a single User by ID. Returns ErrNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (user.DetailOutput, error) {
	if u, ok := uc.recall(ctx, id); ok {
		return user.DetailOutput{User: u}, nil
	}

	u, found, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneUser: %v", err)
		return user.DetailOutput{}, err
	}
	if !found {
		return user.DetailOutput{}, user.ErrNotFound
	}

	uc.remember(ctx, u)
	return user.DetailOutput{User: u}, nil
}
