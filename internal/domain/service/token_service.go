package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess = "access"
	TokenTypeAdmin  = "admin"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID `json:"sub"`
	Email  string    `json:"email,omitempty"`
	Roles  []string  `json:"roles,omitempty"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating signed session tokens.
type TokenService interface {
	// GenerateToken issues a token for a subject carrying roles, valid for ttl.
	GenerateToken(subject uuid.UUID, email string, roles []string, tokenType string, ttl time.Duration) (string, error)

	// ValidateToken checks the signature and expiry of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
