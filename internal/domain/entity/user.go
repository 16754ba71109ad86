package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a learner account. PasswordHash never leaves the service layer.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string // Stored lowercased.
	PasswordHash string
	Role         Role
	Profile      Profile
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile holds optional, user-editable details.
type Profile struct {
	Avatar string
	Bio    string
	Phone  string
}

// Roles returns the user's role as a role set for token claims.
func (u *User) Roles() Roles {
	return Roles{u.Role}
}
