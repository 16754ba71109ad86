// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"booksy/internal/domain/entity"

	"github.com/google/uuid"
)

// CourseRepository defines the interface for course-related database operations.
type CourseRepository interface {
	// Create persists a new course. Pricing rules are applied before the write.
	Create(ctx context.Context, course *entity.Course) error

	// Update overwrites an existing course. Pricing rules are applied before the write.
	Update(ctx context.Context, course *entity.Course) error

	// Delete hard-deletes a course by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a course regardless of its active flag.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error)

	// FindByIDForUpdate retrieves a course and locks its row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Course, error)

	// FindByIDs retrieves the courses that still exist among ids.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Course, error)

	// List runs a catalog query over active courses.
	List(ctx context.Context, filter entity.CourseFilter) (*entity.CoursePage, error)

	// ListAll returns every course, newest first.
	ListAll(ctx context.Context) ([]*entity.Course, error)

	// FindFeatured returns highly rated, popular active courses.
	FindFeatured(ctx context.Context, minRating float64, minStudents, limit int) ([]*entity.Course, error)

	// FindFree returns active free courses by popularity.
	FindFree(ctx context.Context, limit int) ([]*entity.Course, error)

	// FindRelated returns active courses of the same category, excluding the given course.
	FindRelated(ctx context.Context, category entity.Category, excludeID uuid.UUID, limit int) ([]*entity.Course, error)

	// Suggest matches active courses by name, title or tags.
	Suggest(ctx context.Context, query string, limit int) ([]*entity.Course, error)

	// TopByStudents returns the most enrolled courses.
	TopByStudents(ctx context.Context, limit int) ([]*entity.Course, error)

	// Recent returns the most recently created courses.
	Recent(ctx context.Context, limit int) ([]*entity.Course, error)

	// Facets returns distinct categories, levels and the price range of active courses.
	Facets(ctx context.Context) (*entity.CatalogFacets, error)

	// CategorySummaries aggregates active courses per category, largest first.
	CategorySummaries(ctx context.Context) ([]*entity.CategorySummary, error)

	// Totals returns the course count and the sum of enrolled students.
	Totals(ctx context.Context) (courses int64, students int64, err error)

	// IncrementStudents atomically adds one to the course's enrolled counter.
	IncrementStudents(ctx context.Context, id uuid.UUID) error

	// UpdateRating stores a recomputed rating aggregate.
	UpdateRating(ctx context.Context, id uuid.UUID, rating entity.Rating) error
}
