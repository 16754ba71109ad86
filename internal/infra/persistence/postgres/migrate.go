package postgres

import (
	"booksy/internal/errors"
	"booksy/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the tables backing the catalog, accounts and enrollments.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.CourseModel{},
		&model.UserModel{},
		&model.EnrollmentModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
