package user

import (
	"context"
)

// Repository defines the user repository API
type Repository interface {
	// GetByUsername retrieves a user by their username
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Create creates a new user
	Create(ctx context.Context, create *Create) (*User, error)

	// Delete deletes a user by their username
	Delete(ctx context.Context, username string) error
}

// Create is used to create a new user
type Create struct {
	Username     string
	DisplayName  string
	PasswordHash string
}
