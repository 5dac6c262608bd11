package repository

import (
	"context"

	"storefront/internal/model"
)

//go:generate mockgen -source=interface.go -destination=../mocks/repository.go -package=mocks

// Repository is the composed interface for the user data store.
type Repository interface {
	UserRepository
}

// UserRepository defines all data access methods for the User entity.
// GetOneUser reports a missing row with found == false and a nil error.
type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (u model.User, found bool, err error)
}
