package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"booksy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a migrated SQLite database private to the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "booksy.db")), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
		NowFunc:                func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))

	return db
}

type courseOption func(*entity.Course)

func withCategory(category entity.Category) courseOption {
	return func(c *entity.Course) { c.Category = category }
}

func withPrice(price float64) courseOption {
	return func(c *entity.Course) {
		c.OriginalPrice = price
		c.Price = ""
	}
}

func withStudents(students int) courseOption {
	return func(c *entity.Course) { c.StudentsEnrolled = students }
}

func withRating(average float64, count int) courseOption {
	return func(c *entity.Course) { c.Rating = entity.Rating{Average: average, Count: count} }
}

func withCreatedAt(at time.Time) courseOption {
	return func(c *entity.Course) { c.CreatedAt = at }
}

func withTags(tags ...string) courseOption {
	return func(c *entity.Course) { c.Tags = tags }
}

func inactive() courseOption {
	return func(c *entity.Course) { c.IsActive = false }
}

func seedCourse(t *testing.T, repo *courseRepository, name string, opts ...courseOption) *entity.Course {
	t.Helper()

	course := &entity.Course{
		ID:            uuid.New(),
		Name:          name,
		Title:         name + " title",
		Description:   name + " description",
		Category:      entity.CategoryTechnology,
		Level:         entity.LevelBeginner,
		OriginalPrice: 49,
		IsActive:      true,
	}
	course.ApplyDefaults()
	for _, opt := range opts {
		opt(course)
	}

	require.NoError(t, repo.Create(context.Background(), course))

	return course
}
