package user

// User represents a user entity in the system.
type User struct {
	ID    string // ID is the opaque unique identifier for the user
	Name  string // Name is the full name of the user
	Email string // Email is the email address of the user
}
