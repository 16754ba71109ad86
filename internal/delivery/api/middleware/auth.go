package middleware

import (
	"strings"

	"booksy/internal/delivery/api/response"
	deliverycontext "booksy/internal/delivery/context"
	"booksy/internal/domain/entity"
	domainerrors "booksy/internal/domain/errors"
	"booksy/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	keyUserID = "userID"
	keyEmail  = "email"
	keyRoles  = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores its claims on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, domainerrors.ErrUnauthorized)
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			return unauthorized(c, domainerrors.ErrUnauthorized)
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil || claims.UserID == uuid.Nil {
			return unauthorized(c, domainerrors.ErrTokenInvalid)
		}

		c.Set(keyUserID, claims.UserID)
		c.Set(keyEmail, claims.Email)
		c.Set(keyRoles, entity.RolesFromStrings(claims.Roles))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLearner(c.Request().Context(), claims.UserID)))

		return next(c)
	}
}

// RequireRole checks the authenticated roles. It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(keyRoles).(entity.Roles)
			if !ok || !roles.Contains(requiredRole) {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), "Access denied. "+titleRole(requiredRole)+" privileges required.")
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated subject.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(keyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetEmail returns the email carried by the token, if any.
func GetEmail(c echo.Context) string {
	email, _ := c.Get(keyEmail).(string)

	return email
}

func unauthorized(c echo.Context, err *domainerrors.BaseError) error {
	return response.Unauthorized(c, err.ErrorCode(), err.Message())
}

func titleRole(role entity.Role) string {
	s := role.String()
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
