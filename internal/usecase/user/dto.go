package user

// CreateUserRequest represents the request payload for creating a new user.
type CreateUserRequest struct {
	Name  string `validate:"required"`
	Email string
}

// CreateUserResponse represents the response payload after creating a user.
type CreateUserResponse struct {
	ID string
}
