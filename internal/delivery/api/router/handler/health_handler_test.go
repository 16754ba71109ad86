package handler

import (
	"net/http"
	"testing"
	"time"

	"booksy/config"

	"github.com/stretchr/testify/assert"
)

func TestHealthHandler_HealthCheck(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Version = "1.2.3"

	h := NewHealthHandler(cfg)
	started := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	h.started = started
	h.now = func() time.Time { return started.Add(90 * time.Second) }

	rec, err := perform(t, h.HealthCheck, testRequest{method: http.MethodGet, target: "/health"})
	requireStatus(t, rec, err, http.StatusOK)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "BOOKSY Backend API is running", env.Message)

	var data map[string]string
	decodeData(t, env, &data)
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, "1.2.3", data["version"])
	assert.Equal(t, "2024-01-01T12:01:30Z", data["timestamp"])
	assert.NotEmpty(t, data["uptime"])
}
