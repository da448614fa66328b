package user

// CreateUserRequest represents the request payload for creating a new user.
type CreateUserRequest struct {
	Name     string
	Username string
	Email    string
}

// UpdateUserRequest represents a partial update. Nil fields are not changed.
type UpdateUserRequest struct {
	ID       int64
	Name     *string
	Username *string
	Email    *string
}
