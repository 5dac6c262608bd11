package user

import (
	"strings"

	"storefront/internal/model"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Email string
	Name  string
}

// NormalizeEmail trims and lower-cases an address so lookups and the unique
// index agree.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// --- UseCase Outputs ---

type CreateOutput struct {
	User model.User
}

type DetailOutput struct {
	User model.User
}
