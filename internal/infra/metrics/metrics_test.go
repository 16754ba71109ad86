package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "booksy/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_BusinessCounters(t *testing.T) {
	r := New()

	r.EnrollmentCreated("Technology")
	r.EnrollmentCreated("Technology")
	r.EnrollmentRemoved()
	r.CourseRated(5)
	r.UserRegistered()

	assert.InDelta(t, 2, testutil.ToFloat64(r.enrollments.WithLabelValues("Technology")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.unenrollments), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.ratings.WithLabelValues("5")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.registrations), 0)
}

func TestRegistry_MiddlewareLabelsRouteAndStatus(t *testing.T) {
	r := New()
	e := echo.New()
	e.Use(r.Middleware())
	e.GET("/api/courses/:id", func(c echo.Context) error {
		return domainerrors.ErrCourseNotFound
	})
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for _, path := range []string{"/api/courses/123", "/health"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.InDelta(t, 1, testutil.ToFloat64(r.httpRequests.WithLabelValues(http.MethodGet, "/api/courses/:id", "404")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.httpRequests.WithLabelValues(http.MethodGet, "/health", "200")), 0)
}

func TestRegistry_HandlerExposesMetrics(t *testing.T) {
	r := New()
	r.UserRegistered()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "booksy_user_registrations_total 1"))
}
