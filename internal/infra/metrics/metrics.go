// Package metrics exposes Prometheus collectors for HTTP traffic and enrollment activity.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "booksy/internal/domain/errors"
	"booksy/internal/domain/service"
	"booksy/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "booksy"

// Registry owns a private Prometheus registry and every collector registered on it.
type Registry struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	enrollments         *prometheus.CounterVec
	unenrollments       prometheus.Counter
	ratings             *prometheus.CounterVec
	registrations       prometheus.Counter
}

var _ service.Metrics = (*Registry)(nil)

// New builds the registry with Go runtime and process collectors included.
func New() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		enrollments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enrollments_total",
			Help:      "Count of course enrollments by category",
		}, []string{"category"}),
		unenrollments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unenrollments_total",
			Help:      "Count of removed enrollments",
		}),
		ratings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "course_ratings_total",
			Help:      "Count of submitted course ratings by value",
		}, []string{"rating"}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "user_registrations_total",
			Help:      "Count of new learner accounts",
		}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.httpRequests,
		r.httpRequestDuration,
		r.enrollments,
		r.unenrollments,
		r.ratings,
		r.registrations,
	)

	return r
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Middleware records request counts and latency labelled by the matched route.
func (r *Registry) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				// The error handler runs after the chain unwinds, so derive the status it will write.
				status = statusFromError(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}

			r.ObserveHTTPRequest(c.Request().Method, path, status, time.Since(start))

			return err
		}
	}
}

func statusFromError(err error) int {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

// ObserveHTTPRequest records a single HTTP request.
func (r *Registry) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	r.httpRequests.WithLabelValues(method, path, code).Inc()
	r.httpRequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
}

func (r *Registry) EnrollmentCreated(category string) {
	r.enrollments.WithLabelValues(category).Inc()
}

func (r *Registry) EnrollmentRemoved() {
	r.unenrollments.Inc()
}

func (r *Registry) CourseRated(rating int) {
	r.ratings.WithLabelValues(strconv.Itoa(rating)).Inc()
}

func (r *Registry) UserRegistered() {
	r.registrations.Inc()
}
