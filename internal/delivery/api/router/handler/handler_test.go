package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"booksy/internal/delivery/api/middleware"
	"booksy/internal/delivery/api/validator"
	"booksy/internal/domain/service"
	mockSvc "booksy/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

type testRequest struct {
	method string
	target string
	body   string
	id     string
	userID uuid.UUID
	email  string
	roles  []string
}

// perform runs a handler against a recorded request. A non-nil userID authenticates the request through the real middleware.
func perform(t *testing.T, handler echo.HandlerFunc, r testRequest) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(r.method, r.target, strings.NewReader(r.body))
	if r.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	if r.userID != uuid.Nil {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().ValidateToken(testToken).Return(&service.Claims{
			UserID: r.userID,
			Email:  r.email,
			Roles:  r.roles,
		}, nil)
		handler = middleware.NewAuthMiddleware(tokens).Authenticate(handler)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if r.id != "" {
		c.SetParamNames("id")
		c.SetParamValues(r.id)
	}

	err := handler(c)

	return rec, err
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()

	require.NoError(t, json.Unmarshal(env.Data, out))
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, err error, status int) {
	t.Helper()

	require.NoError(t, err)
	require.Equal(t, status, rec.Code, rec.Body.String())
}
