package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	MinProgress = 0
	MaxProgress = 100
)

// Enrollment records a user's relationship to a course.
// CourseID is a weak reference: the course may have been deleted since.
type Enrollment struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CourseID     uuid.UUID
	EnrolledAt   time.Time
	Progress     int
	Completed    bool
	CompletedAt  *time.Time
	LastAccessed time.Time
}

// NewEnrollment starts a fresh enrollment with no progress.
func NewEnrollment(userID, courseID uuid.UUID, now time.Time) *Enrollment {
	return &Enrollment{
		ID:           uuid.New(),
		UserID:       userID,
		CourseID:     courseID,
		EnrolledAt:   now,
		Progress:     0,
		Completed:    false,
		LastAccessed: now,
	}
}

// IsValidProgress reports whether p lies within 0..100.
func IsValidProgress(p int) bool {
	return p >= MinProgress && p <= MaxProgress
}

// RecordProgress sets progress and touches lastAccessed. When completed is non-nil it is applied;
// becoming completed stamps completedAt, while un-completing keeps the previous stamp.
// Progress and completion are independent and neither is derived from the other.
func (e *Enrollment) RecordProgress(progress int, completed *bool, now time.Time) {
	e.Progress = progress
	e.LastAccessed = now

	if completed == nil {
		return
	}

	e.Completed = *completed
	if *completed {
		stamp := now
		e.CompletedAt = &stamp
	}
}

// IsInProgress reports a started but not completed enrollment.
func (e *Enrollment) IsInProgress() bool {
	return !e.Completed && e.Progress > 0
}

// EnrollmentStats summarizes a user's enrollments.
type EnrollmentStats struct {
	TotalCourses      int `json:"totalCourses"`
	CompletedCourses  int `json:"completedCourses"`
	InProgressCourses int `json:"inProgressCourses"`
	NotStarted        int `json:"notStarted"`
	AverageProgress   int `json:"averageProgress"`
}

// ComputeEnrollmentStats derives the statistics shown on the "my courses" page.
// NotStarted is always TotalCourses - CompletedCourses - InProgressCourses.
func ComputeEnrollmentStats(enrollments []*Enrollment) EnrollmentStats {
	stats := EnrollmentStats{TotalCourses: len(enrollments)}
	if stats.TotalCourses == 0 {
		return stats
	}

	totalProgress := 0
	for _, e := range enrollments {
		totalProgress += e.Progress
		switch {
		case e.Completed:
			stats.CompletedCourses++
		case e.IsInProgress():
			stats.InProgressCourses++
		}
	}

	stats.NotStarted = stats.TotalCourses - stats.CompletedCourses - stats.InProgressCourses
	stats.AverageProgress = int(math.Round(float64(totalProgress) / float64(stats.TotalCourses)))

	return stats
}
