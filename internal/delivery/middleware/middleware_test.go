package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"booksy/config"
	deliverycontext "booksy/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "client id is reused", incoming: "req-123", keep: true},
		{name: "missing id is generated", incoming: ""},
		{name: "id with spaces is replaced", incoming: "bad id"},
		{name: "oversized id is replaced", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var fromCtx string
			handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return c.NoContent(http.StatusNoContent)
			})
			require.NoError(t, handler(c))

			header := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, header)
			assert.Equal(t, header, fromCtx)
			if tt.keep {
				assert.Equal(t, tt.incoming, header)
			} else {
				assert.NotEqual(t, tt.incoming, header)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		path    string
		handler echo.HandlerFunc
		logged  bool
	}{
		{
			name:    "success is quiet outside debug",
			path:    "/api/courses",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		},
		{
			name:    "success is logged in debug",
			debug:   true,
			path:    "/api/courses",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			logged:  true,
		},
		{
			name:    "server error is always logged",
			path:    "/api/courses",
			handler: func(c echo.Context) error { return echo.NewHTTPError(http.StatusServiceUnavailable) },
			logged:  true,
		},
		{
			name:    "health probe is skipped",
			debug:   true,
			path:    "/health",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			c := e.NewContext(req, httptest.NewRecorder())
			c.SetPath(tt.path)

			_ = NewLoggerMiddleware(logger, cfg).Handle(tt.handler)(c)

			if tt.logged {
				assert.Contains(t, buf.String(), `"msg":"HTTP Request"`)
				assert.Contains(t, buf.String(), `"route":"`+tt.path+`"`)
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
