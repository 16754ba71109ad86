package usecase

import (
	"context"

	"booksy/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput holds the optional profile changes. Nil fields are left untouched.
type UpdateProfileInput struct {
	Name   *string
	Avatar *string
	Bio    *string
	Phone  *string
}

// --- Output DTOs ---

// AuthOutput returns the authenticated user and an access token.
type AuthOutput struct {
	User        *entity.User
	AccessToken string
}

// UserUsecase defines the interface for account operations.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.User, error)
}
