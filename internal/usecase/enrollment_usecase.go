package usecase

import (
	"context"
	"time"

	"booksy/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProgressInput carries a progress report. Completed is optional.
type UpdateProgressInput struct {
	Progress  int
	Completed *bool
}

// RateInput carries a learner rating. Review is accepted but not stored.
type RateInput struct {
	Rating int
	Review string
}

// EnrollOutput summarizes a new enrollment.
type EnrollOutput struct {
	CourseID   uuid.UUID
	CourseName string
	EnrolledAt time.Time
	Progress   int
}

// EnrolledCourse pairs an enrollment with its course. Course is nil when the course was deleted.
type EnrolledCourse struct {
	Enrollment *entity.Enrollment
	Course     *entity.Course
}

// EnrolledCoursesOutput is the learner's course list with statistics.
type EnrolledCoursesOutput struct {
	Courses []*EnrolledCourse
	Stats   entity.EnrollmentStats
}

// RatingOutput is the course rating after a new rating was folded in.
type RatingOutput struct {
	AverageRating float64
	TotalRatings  int
}

// EnrollmentUsecase defines enrollment, progress tracking and rating.
type EnrollmentUsecase interface {
	Enroll(ctx context.Context, userID, courseID uuid.UUID) (*EnrollOutput, error)
	UpdateProgress(ctx context.Context, userID, courseID uuid.UUID, input UpdateProgressInput) (*entity.Enrollment, error)
	GetProgress(ctx context.Context, userID, courseID uuid.UUID) (*entity.Enrollment, error)

	// Unenroll removes the enrollment and returns the course name, or "" when the course no longer exists.
	Unenroll(ctx context.Context, userID, courseID uuid.UUID) (string, error)

	ListEnrolled(ctx context.Context, userID uuid.UUID) (*EnrolledCoursesOutput, error)
	Rate(ctx context.Context, userID, courseID uuid.UUID, input RateInput) (*RatingOutput, error)
}
