package repository

import (
	"context"

	"booksy/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address (case-insensitive).
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile saves the user's name and profile fields.
	UpdateProfile(ctx context.Context, user *entity.User) error

	// Count returns the number of registered users.
	Count(ctx context.Context) (int64, error)
}
