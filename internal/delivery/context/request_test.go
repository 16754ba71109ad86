package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_EchoContext(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)

	SetRequestID(c, "req-42")
	assert.Equal(t, "req-42", GetRequestID(c))
}

func TestRequestID_StdContext(t *testing.T) {
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "req-7", GetRequestIDFromContext(WithRequestID(context.Background(), "req-7")))
}

func TestWithLearner_TagsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	userID := uuid.New()

	ctx := WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))
	ctx = WithLearner(ctx, userID)

	got, ok := GetUserIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, userID, got)

	GetLoggerOrDefault(ctx, fallback).Info("enrolled")
	assert.Contains(t, buf.String(), "user_id="+userID.String())
}

func TestWithLearner_WithoutLogger(t *testing.T) {
	ctx := WithLearner(context.Background(), uuid.New())

	assert.Nil(t, GetLogger(ctx))
	_, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)

	_, ok = GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}
