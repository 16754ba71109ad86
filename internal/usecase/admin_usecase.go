package usecase

import (
	"context"

	"booksy/internal/domain/entity"

	"github.com/google/uuid"
)

// CourseInput is the admin payload for creating or editing a course.
// On update, empty strings, nil slices and nil pointers keep the stored value.
type CourseInput struct {
	Name             string
	Title            string
	Description      string
	Price            string
	OriginalPrice    *float64
	Category         string
	Level            string
	Duration         string
	Instructor       string
	Image            string
	Lessons          []entity.Lesson
	Requirements     []string
	LearningOutcomes []string
	Tags             []string
	IsActive         *bool
	IsFree           *bool
}

// AdminIdentity describes the signed-in administrator.
type AdminIdentity struct {
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
}

// AdminLoginOutput returns the admin token.
type AdminLoginOutput struct {
	Token string
	Admin AdminIdentity
}

// DashboardOutput is the admin overview.
type DashboardOutput struct {
	Stats          entity.DashboardStats
	PopularCourses []*entity.Course
	RecentCourses  []*entity.Course
}

// AdminUsecase defines back-office operations.
type AdminUsecase interface {
	Login(ctx context.Context, email, password string) (*AdminLoginOutput, error)

	// Verify confirms that a token email still belongs to the configured administrator.
	Verify(ctx context.Context, email string) (*AdminIdentity, error)

	ListCourses(ctx context.Context) ([]*entity.Course, error)
	CreateCourse(ctx context.Context, input CourseInput) (*entity.Course, error)
	UpdateCourse(ctx context.Context, id uuid.UUID, input CourseInput) (*entity.Course, error)
	DeleteCourse(ctx context.Context, id uuid.UUID) error
	Dashboard(ctx context.Context) (*DashboardOutput, error)
}
