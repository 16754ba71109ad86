package postgres

import (
	"context"

	"booksy/internal/domain/entity"
	domainerrors "booksy/internal/domain/errors"
	"booksy/internal/domain/repository"
	"booksy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// enrollmentRepository implements the repository.EnrollmentRepository interface.
// Lookups are pinned to the primary so a learner sees their own enrollment immediately.
type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository is the constructor for enrollmentRepository.
func NewEnrollmentRepository(db *gorm.DB) repository.EnrollmentRepository {
	return &enrollmentRepository{
		db: db,
	}
}

// Create inserts a new enrollment. The (user_id, course_id) unique index rejects duplicates.
func (repo *enrollmentRepository) Create(ctx context.Context, enrollment *entity.Enrollment) error {
	if enrollment.ID == uuid.Nil {
		enrollment.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(fromEnrollmentDomain(enrollment)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAlreadyEnrolled
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidProgress
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create enrollment")
	}

	return nil
}

// FindByUserAndCourse retrieves the enrollment of a user in a course.
func (repo *enrollmentRepository) FindByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*entity.Enrollment, error) {
	var enrollmentM model.EnrollmentModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEnrollmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find enrollment")
	}

	return toEnrollmentDomain(&enrollmentM), nil
}

// FindByUser retrieves all enrollments of a user, most recent first.
func (repo *enrollmentRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Enrollment, error) {
	var enrollmentModels []*model.EnrollmentModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ?", userID).
		Order("enrolled_at DESC").
		Order("id ASC").
		Find(&enrollmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find enrollments by user")
	}

	enrollments := make([]*entity.Enrollment, 0, len(enrollmentModels))
	for _, enrollmentM := range enrollmentModels {
		enrollments = append(enrollments, toEnrollmentDomain(enrollmentM))
	}

	return enrollments, nil
}

// UpdateProgress saves progress, completion and access timestamps.
func (repo *enrollmentRepository) UpdateProgress(ctx context.Context, enrollment *entity.Enrollment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EnrollmentModel{}).
		Where("id = ?", enrollment.ID).
		Updates(map[string]any{
			"progress":      enrollment.Progress,
			"completed":     enrollment.Completed,
			"completed_at":  enrollment.CompletedAt,
			"last_accessed": enrollment.LastAccessed,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidProgress
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update enrollment progress")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEnrollmentNotFound
	}

	return nil
}

// Delete removes an enrollment permanently.
func (repo *enrollmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.EnrollmentModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete enrollment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEnrollmentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toEnrollmentDomain converts a GORM EnrollmentModel to a domain Enrollment entity.
func toEnrollmentDomain(data *model.EnrollmentModel) *entity.Enrollment {
	if data == nil {
		return nil
	}

	return &entity.Enrollment{
		ID:           data.ID,
		UserID:       data.UserID,
		CourseID:     data.CourseID,
		EnrolledAt:   data.EnrolledAt,
		Progress:     data.Progress,
		Completed:    data.Completed,
		CompletedAt:  data.CompletedAt,
		LastAccessed: data.LastAccessed,
	}
}

// fromEnrollmentDomain converts a domain Enrollment entity to a GORM EnrollmentModel.
func fromEnrollmentDomain(data *entity.Enrollment) *model.EnrollmentModel {
	if data == nil {
		return nil
	}

	return &model.EnrollmentModel{
		ID:           data.ID,
		UserID:       data.UserID,
		CourseID:     data.CourseID,
		EnrolledAt:   data.EnrolledAt,
		Progress:     data.Progress,
		Completed:    data.Completed,
		CompletedAt:  data.CompletedAt,
		LastAccessed: data.LastAccessed,
	}
}
