package usecase

import (
	"context"
	"fmt"

	"storefront/internal/user"
	repo "storefront/internal/user/repository"
)

// Create registers a new user after checking the email is free. The unique
// index still rejects a concurrent insert that wins the race.
func (uc *implUseCase) Create(ctx context.Context, input user.CreateInput) (user.CreateOutput, error) {
	email := user.NormalizeEmail(input.Email)

	_, found, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneUser: %v", err)
		return user.CreateOutput{}, err
	}
	if found {
		return user.CreateOutput{}, fmt.Errorf("%w: %s", user.ErrEmailTaken, email)
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Email: email,
		Name:  input.Name,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateUser: %v", err)
		return user.CreateOutput{}, err
	}

	uc.remember(ctx, u)
	return user.CreateOutput{User: u}, nil
}
