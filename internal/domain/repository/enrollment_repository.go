package repository

import (
	"context"

	"booksy/internal/domain/entity"

	"github.com/google/uuid"
)

// EnrollmentRepository defines the interface for enrollment persistence.
// At most one enrollment exists per (user, course); Create reports a duplicate as ErrAlreadyEnrolled.
type EnrollmentRepository interface {
	// Create inserts a new enrollment.
	Create(ctx context.Context, enrollment *entity.Enrollment) error

	// FindByUserAndCourse retrieves the enrollment of a user in a course.
	FindByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*entity.Enrollment, error)

	// FindByUser retrieves all enrollments of a user, most recent first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Enrollment, error)

	// UpdateProgress saves progress, completion and access timestamps.
	UpdateProgress(ctx context.Context, enrollment *entity.Enrollment) error

	// Delete removes an enrollment permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
