package repository

// CreateUserOptions holds parameters for inserting a new User.
type CreateUserOptions struct {
	Email string
	Name  string
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-empty fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID    int64
	Email string
}
