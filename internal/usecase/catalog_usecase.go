// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"booksy/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListCoursesInput carries the raw catalog query. Zero values select the defaults.
type ListCoursesInput struct {
	Category  string
	Search    string
	Level     string
	MinPrice  *float64
	MaxPrice  *float64
	FreeOnly  bool
	SortBy    string
	SortOrder string // "asc" or "desc"; anything else sorts descending.
	Page      int
	Limit     int
}

// --- Output DTOs ---

// PriceRange is the min and max original price in the active catalog.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// CatalogFilters lists the filter values available in the active catalog.
type CatalogFilters struct {
	Categories []string   `json:"categories"`
	Levels     []string   `json:"levels"`
	PriceRange PriceRange `json:"priceRange"`
}

// CourseListOutput is one page of the catalog plus the available filters.
type CourseListOutput struct {
	Courses     []*entity.Course
	TotalPages  int
	CurrentPage int
	Total       int64
	Filters     CatalogFilters
}

// CourseDetailOutput is a course together with courses from the same category.
type CourseDetailOutput struct {
	Course  *entity.Course
	Related []*entity.Course
}

// CatalogUsecase defines the public catalog queries.
type CatalogUsecase interface {
	// ListCourses filters, sorts and paginates the active catalog.
	ListCourses(ctx context.Context, input ListCoursesInput) (*CourseListOutput, error)

	// FeaturedCourses returns well rated and popular courses.
	FeaturedCourses(ctx context.Context) ([]*entity.Course, error)

	// FreeCourses returns free courses by popularity.
	FreeCourses(ctx context.Context) ([]*entity.Course, error)

	// GetCourse returns a course and related courses.
	GetCourse(ctx context.Context, id uuid.UUID) (*CourseDetailOutput, error)

	// SearchSuggestions returns a few quick matches for a search box.
	SearchSuggestions(ctx context.Context, query string) ([]*entity.Course, error)

	// Categories aggregates the active catalog per category.
	Categories(ctx context.Context) ([]*entity.CategorySummary, error)

	// CourseQRCode renders a share QR code for an existing course.
	CourseQRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
}
