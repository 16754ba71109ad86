package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booksy/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvent() *service.EnrollmentEvent {
	return &service.EnrollmentEvent{
		RequestID:  "req-1",
		EventID:    "evt-1",
		UserID:     "user-1",
		CourseID:   "course-1",
		CourseName: "Go",
		EnrolledAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PushesEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, publisher.PublishEnrollmentEvent(context.Background(), newTestEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, LocalSubscription, received.Subscription)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "course.enrolled", received.Message.Attributes["event_type"])

	event, err := DecodeEnrollmentEvent(&received)
	require.NoError(t, err)
	assert.Equal(t, newTestEvent(), event)
}

func TestLocalHTTPPublisher_FailsOnWorkerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, publisher.PublishEnrollmentEvent(context.Background(), newTestEvent()))
}

func TestDecodeEnrollmentEvent_RejectsGarbage(t *testing.T) {
	msg := &PushMessage{}
	msg.Message.Data = "%%%"

	_, err := DecodeEnrollmentEvent(msg)
	assert.Error(t, err)
}
