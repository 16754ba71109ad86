package service

import (
	"context"
	"time"
)

// EnrollmentEvent is published after a user enrolls in a course and consumed by the worker.
type EnrollmentEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	UserID     string    `json:"user_id"`
	CourseID   string    `json:"course_id"`
	CourseName string    `json:"course_name"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEnrollmentEvent publishes an enrollment event for async processing
	PublishEnrollmentEvent(ctx context.Context, event *EnrollmentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
