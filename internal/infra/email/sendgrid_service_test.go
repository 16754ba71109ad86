package email

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"booksy/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendgridService_SendEnrollmentConfirmation(t *testing.T) {
	var (
		auth    string
		path    string
		payload map[string]any
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		path = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	svc := NewSendgridService("sg-key", server.URL, "BOOKSY", "noreply@booksy.test")
	require.NoError(t, svc.SendEnrollmentConfirmation(context.Background(), "Ada", "ada@example.com", "Go Basics"))

	assert.Equal(t, "Bearer sg-key", auth)
	assert.Equal(t, sendEndpoint, path)

	personalizations := payload["personalizations"].([]any)
	require.Len(t, personalizations, 1)
	first := personalizations[0].(map[string]any)
	assert.Equal(t, "[BOOKSY] You're enrolled in Go Basics", first["subject"])
}

func TestSendgridService_ReportsRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	svc := NewSendgridService("bad-key", server.URL, "BOOKSY", "noreply@booksy.test")
	assert.Error(t, svc.SendWelcome(context.Background(), "Ada", "ada@example.com"))
}

func TestNew_FallsBackToLogging(t *testing.T) {
	var buf bytes.Buffer
	svc := New(Params{
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(&buf, nil)),
	})

	require.NoError(t, svc.SendWelcome(context.Background(), "Ada", "ada@example.com"))
	assert.Contains(t, buf.String(), "ada@example.com")
	assert.Contains(t, buf.String(), "Welcome to BOOKSY")
}
