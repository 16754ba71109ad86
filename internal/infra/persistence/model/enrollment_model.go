package model

import (
	"time"

	"github.com/google/uuid"
)

// EnrollmentModel mirrors the 'enrollments' table.
// course_id is a weak reference without a foreign key: deleting a course leaves its enrollments behind.
type EnrollmentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_user_course,priority:1"`
	CourseID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollments_user_course,priority:2;index"`
	EnrolledAt   time.Time `gorm:"not null"`
	Progress     int       `gorm:"not null;default:0;check:chk_enrollments_progress,progress >= 0 AND progress <= 100"`
	Completed    bool      `gorm:"not null;default:false"`
	CompletedAt  *time.Time
	LastAccessed time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (EnrollmentModel) TableName() string {
	return "enrollments"
}
