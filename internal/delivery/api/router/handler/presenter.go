package handler

import (
	"time"

	"booksy/internal/domain/entity"
	"booksy/internal/usecase"

	"github.com/google/uuid"
)

// CourseResponse is the public JSON shape of a course.
type CourseResponse struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Price            string          `json:"price"`
	OriginalPrice    float64         `json:"originalPrice"`
	Category         entity.Category `json:"category"`
	Level            entity.Level    `json:"level"`
	Duration         string          `json:"duration"`
	Instructor       string          `json:"instructor"`
	Image            string          `json:"image"`
	Lessons          []entity.Lesson `json:"lessons"`
	Requirements     []string        `json:"requirements"`
	LearningOutcomes []string        `json:"learningOutcomes"`
	Tags             []string        `json:"tags"`
	Rating           entity.Rating   `json:"rating"`
	StudentsEnrolled int             `json:"studentsEnrolled"`
	IsActive         bool            `json:"isActive"`
	IsFree           bool            `json:"isFree"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// CourseSummary is the projection shown next to an enrollment.
type CourseSummary struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Title            string          `json:"title"`
	Image            string          `json:"image"`
	Category         entity.Category `json:"category"`
	Instructor       string          `json:"instructor"`
	Duration         string          `json:"duration"`
	Level            entity.Level    `json:"level"`
	Rating           entity.Rating   `json:"rating"`
	StudentsEnrolled int             `json:"studentsEnrolled"`
}

// Suggestion is the search box projection.
type Suggestion struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Title    string          `json:"title"`
	Category entity.Category `json:"category"`
	Image    string          `json:"image"`
}

// ProgressResponse describes an enrollment.
type ProgressResponse struct {
	CourseID     uuid.UUID  `json:"courseId"`
	EnrolledAt   time.Time  `json:"enrolledAt"`
	Progress     int        `json:"progress"`
	Completed    bool       `json:"completed"`
	CompletedAt  *time.Time `json:"completedAt"`
	LastAccessed time.Time  `json:"lastAccessed"`
}

// EnrolledCourseResponse is an enrollment with its course. Course is null when the course was deleted.
type EnrolledCourseResponse struct {
	ProgressResponse
	Course *CourseSummary `json:"course"`
}

// ProfileResponse holds the optional profile fields.
type ProfileResponse struct {
	Avatar string `json:"avatar"`
	Bio    string `json:"bio"`
	Phone  string `json:"phone"`
}

// UserResponse is the public JSON shape of a user. The password hash is never included.
type UserResponse struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       entity.Role     `json:"role"`
	Profile    ProfileResponse `json:"profile"`
	IsVerified bool            `json:"isVerified"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func toCourseResponse(course *entity.Course) *CourseResponse {
	if course == nil {
		return nil
	}

	return &CourseResponse{
		ID:               course.ID,
		Name:             course.Name,
		Title:            course.Title,
		Description:      course.Description,
		Price:            course.Price,
		OriginalPrice:    course.OriginalPrice,
		Category:         course.Category,
		Level:            course.Level,
		Duration:         course.Duration,
		Instructor:       course.Instructor,
		Image:            course.Image,
		Lessons:          nonNil(course.Lessons),
		Requirements:     nonNil(course.Requirements),
		LearningOutcomes: nonNil(course.LearningOutcomes),
		Tags:             nonNil(course.Tags),
		Rating:           course.Rating,
		StudentsEnrolled: course.StudentsEnrolled,
		IsActive:         course.IsActive,
		IsFree:           course.IsFree,
		CreatedAt:        course.CreatedAt,
		UpdatedAt:        course.UpdatedAt,
	}
}

func toCourseResponses(courses []*entity.Course) []*CourseResponse {
	out := make([]*CourseResponse, 0, len(courses))
	for _, course := range courses {
		out = append(out, toCourseResponse(course))
	}

	return out
}

func toCourseSummary(course *entity.Course) *CourseSummary {
	if course == nil {
		return nil
	}

	return &CourseSummary{
		ID:               course.ID,
		Name:             course.Name,
		Title:            course.Title,
		Image:            course.Image,
		Category:         course.Category,
		Instructor:       course.Instructor,
		Duration:         course.Duration,
		Level:            course.Level,
		Rating:           course.Rating,
		StudentsEnrolled: course.StudentsEnrolled,
	}
}

func toSuggestions(courses []*entity.Course) []*Suggestion {
	out := make([]*Suggestion, 0, len(courses))
	for _, course := range courses {
		out = append(out, &Suggestion{
			ID:       course.ID,
			Name:     course.Name,
			Title:    course.Title,
			Category: course.Category,
			Image:    course.Image,
		})
	}

	return out
}

func toProgressResponse(enrollment *entity.Enrollment) ProgressResponse {
	return ProgressResponse{
		CourseID:     enrollment.CourseID,
		EnrolledAt:   enrollment.EnrolledAt,
		Progress:     enrollment.Progress,
		Completed:    enrollment.Completed,
		CompletedAt:  enrollment.CompletedAt,
		LastAccessed: enrollment.LastAccessed,
	}
}

func toEnrolledCourses(items []*usecase.EnrolledCourse) []*EnrolledCourseResponse {
	out := make([]*EnrolledCourseResponse, 0, len(items))
	for _, item := range items {
		out = append(out, &EnrolledCourseResponse{
			ProgressResponse: toProgressResponse(item.Enrollment),
			Course:           toCourseSummary(item.Course),
		})
	}

	return out
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Profile: ProfileResponse{
			Avatar: user.Profile.Avatar,
			Bio:    user.Profile.Bio,
			Phone:  user.Profile.Phone,
		},
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
