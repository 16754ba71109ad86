package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "booksy/internal/delivery/context"
	"booksy/internal/domain/entity"
	"booksy/internal/domain/service"
	"booksy/internal/errors"
	mockSvc "booksy/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithAuth(t *testing.T, m *AuthMiddleware, header string, role entity.Role) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	handler := func(c echo.Context) error {
		userID, ok := GetUserID(c)
		require.True(t, ok)

		return c.String(http.StatusOK, userID.String())
	}

	chain := m.Authenticate(handler)
	if role != "" {
		chain = m.Authenticate(m.RequireRole(role)(handler))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	require.NoError(t, chain(e.NewContext(req, rec)))

	return rec
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	rec := serveWithAuth(t, m, "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid"))

	rec := serveWithAuth(t, NewAuthMiddleware(tokens), "Bearer bad", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"TOKEN_INVALID"`)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"user"}}, nil)

	rec := serveWithAuth(t, NewAuthMiddleware(tokens), "Bearer good", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), rec.Body.String())
}

func TestAuthMiddleware_ValidTokenTagsRequestContext(t *testing.T) {
	userID := uuid.New()
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"user"}}, nil)

	var got uuid.UUID
	handler := NewAuthMiddleware(tokens).Authenticate(func(c echo.Context) error {
		id, ok := deliverycontext.GetUserIDFromContext(c.Request().Context())
		require.True(t, ok)
		got = id

		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	rec := httptest.NewRecorder()

	require.NoError(t, handler(echo.New().NewContext(req, rec)))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, userID, got)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("user-token").Return(&service.Claims{UserID: uuid.New(), Roles: []string{"user"}}, nil)
	tokens.EXPECT().ValidateToken("admin-token").Return(&service.Claims{UserID: uuid.New(), Roles: []string{"admin"}}, nil)
	m := NewAuthMiddleware(tokens)

	rec := serveWithAuth(t, m, "Bearer user-token", entity.RoleAdmin)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"FORBIDDEN"`)

	rec = serveWithAuth(t, m, "Bearer admin-token", entity.RoleAdmin)
	assert.Equal(t, http.StatusOK, rec.Code)
}
