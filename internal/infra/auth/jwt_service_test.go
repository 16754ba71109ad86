package auth

import (
	"testing"
	"time"

	"booksy/config"
	"booksy/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(t, "test_access_secret_key_very_long_for_testing")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "ada@example.com", []string{"user"}, service.TokenTypeAccess, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, []string{"user"}, claims.Roles)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, "secret")
	issued := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateToken(uuid.New(), "", nil, service.TokenTypeAccess, time.Hour)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer := newTestJWTService(t, "secret-one")
	verifier := newTestJWTService(t, "secret-two")

	token, err := issuer.GenerateToken(uuid.New(), "", nil, service.TokenTypeAdmin, time.Hour)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)

	_, err = verifier.ValidateToken("not.a.token")
	assert.Error(t, err)
}
