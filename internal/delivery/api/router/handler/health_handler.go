package handler

import (
	"net/http"
	"time"

	"booksy/config"
	"booksy/internal/delivery/api/response"
	"booksy/internal/util"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness.
type HealthHandler struct {
	version string
	started time.Time
	now     func() time.Time
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		version: cfg.Env.Version,
		started: time.Now(),
		now:     time.Now,
	}
}

// HealthCheck handles GET /health.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	now := h.now()

	return response.Success(c, http.StatusOK, map[string]string{
		"status":    "ok",
		"version":   h.version,
		"uptime":    util.FormatDuration(now.Sub(h.started)),
		"timestamp": now.UTC().Format(time.RFC3339),
	}, "BOOKSY Backend API is running")
}
