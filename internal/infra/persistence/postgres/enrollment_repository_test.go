package postgres

import (
	"context"
	"testing"
	"time"

	"booksy/internal/domain/entity"
	"booksy/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollmentRepository_RejectsDuplicate(t *testing.T) {
	repo := NewEnrollmentRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()
	userID, courseID := uuid.New(), uuid.New()

	require.NoError(t, repo.Create(ctx, entity.NewEnrollment(userID, courseID, now)))

	err := repo.Create(ctx, entity.NewEnrollment(userID, courseID, now))
	assert.ErrorIs(t, err, repository.ErrAlreadyEnrolled)

	enrollments, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, enrollments, 1)
}

func TestEnrollmentRepository_ProgressLifecycle(t *testing.T) {
	repo := NewEnrollmentRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	userID, courseID := uuid.New(), uuid.New()

	enrollment := entity.NewEnrollment(userID, courseID, now)
	require.NoError(t, repo.Create(ctx, enrollment))

	completed := true
	enrollment.RecordProgress(100, &completed, now.Add(time.Hour))
	require.NoError(t, repo.UpdateProgress(ctx, enrollment))

	stored, err := repo.FindByUserAndCourse(ctx, userID, courseID)
	require.NoError(t, err)
	assert.Equal(t, 100, stored.Progress)
	assert.True(t, stored.Completed)
	require.NotNil(t, stored.CompletedAt)
	assert.True(t, stored.CompletedAt.Equal(now.Add(time.Hour)))

	require.NoError(t, repo.Delete(ctx, stored.ID))
	_, err = repo.FindByUserAndCourse(ctx, userID, courseID)
	assert.True(t, errors.Is(err, repository.ErrEnrollmentNotFound))
	assert.ErrorIs(t, repo.Delete(ctx, stored.ID), repository.ErrEnrollmentNotFound)
}

func TestEnrollmentRepository_FindByUserNewestFirst(t *testing.T) {
	repo := NewEnrollmentRepository(newTestDB(t))
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	userID := uuid.New()

	first := entity.NewEnrollment(userID, uuid.New(), base)
	second := entity.NewEnrollment(userID, uuid.New(), base.Add(time.Minute))
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, entity.NewEnrollment(uuid.New(), first.CourseID, base)))

	enrollments, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, enrollments, 2)
	assert.Equal(t, second.ID, enrollments[0].ID)
	assert.Equal(t, first.ID, enrollments[1].ID)
}
