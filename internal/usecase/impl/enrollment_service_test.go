package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"booksy/internal/domain/entity"
	domainerrors "booksy/internal/domain/errors"
	"booksy/internal/domain/repository"
	"booksy/internal/domain/service"
	"booksy/internal/errors"
	mockRepo "booksy/internal/mocks/repository"
	mockSvc "booksy/internal/mocks/service"
	"booksy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

type enrollmentFixture struct {
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	courseRepo     *mockRepo.MockCourseRepository
	userRepo       *mockRepo.MockUserRepository
	enrollmentRepo *mockRepo.MockEnrollmentRepository
	publisher      *mockSvc.MockEventPublisher
	cache          *mockSvc.MockCatalogCache
	metrics        *mockSvc.MockMetrics
	now            time.Time
	service        *enrollmentService
}

func newEnrollmentFixture(t *testing.T) *enrollmentFixture {
	t.Helper()

	f := &enrollmentFixture{
		txManager:      mockRepo.NewMockTransactionManager(t),
		factory:        mockRepo.NewMockRepositoryFactory(t),
		courseRepo:     mockRepo.NewMockCourseRepository(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		enrollmentRepo: mockRepo.NewMockEnrollmentRepository(t),
		publisher:      mockSvc.NewMockEventPublisher(t),
		cache:          mockSvc.NewMockCatalogCache(t),
		metrics:        mockSvc.NewMockMetrics(t),
		now:            time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	f.service = NewEnrollmentService(EnrollmentServiceParams{
		TxManager:      f.txManager,
		CourseRepo:     f.courseRepo,
		EnrollmentRepo: f.enrollmentRepo,
		Publisher:      f.publisher,
		Cache:          f.cache,
		Metrics:        f.metrics,
		TracerProvider: noop.NewTracerProvider(),
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*enrollmentService)
	f.service.now = func() time.Time { return f.now }

	return f
}

// inTransaction runs the callback against the fixture's repositories, propagating its error.
func (f *enrollmentFixture) inTransaction() {
	f.factory.EXPECT().NewCourseRepository().Return(f.courseRepo).Maybe()
	f.factory.EXPECT().NewUserRepository().Return(f.userRepo).Maybe()
	f.factory.EXPECT().NewEnrollmentRepository().Return(f.enrollmentRepo).Maybe()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func TestEnrollmentService_Enroll_Success(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	userID, courseID := uuid.New(), uuid.New()
	course := &entity.Course{ID: courseID, Name: "Go in Practice", Category: entity.CategoryTechnology, StudentsEnrolled: 7}

	f.inTransaction()
	f.courseRepo.EXPECT().FindByID(mock.Anything, courseID).Return(course, nil)
	f.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
	f.enrollmentRepo.EXPECT().FindByUserAndCourse(mock.Anything, userID, courseID).Return(nil, repository.ErrEnrollmentNotFound)
	f.enrollmentRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Enrollment")).
		Run(func(_ context.Context, enrollment *entity.Enrollment) {
			assert.Equal(t, userID, enrollment.UserID)
			assert.Equal(t, courseID, enrollment.CourseID)
			assert.Equal(t, 0, enrollment.Progress)
			assert.False(t, enrollment.Completed)
			assert.Equal(t, f.now, enrollment.EnrolledAt)
			assert.Equal(t, f.now, enrollment.LastAccessed)
		}).
		Return(nil)
	f.courseRepo.EXPECT().IncrementStudents(mock.Anything, courseID).Return(nil)
	f.metrics.EXPECT().EnrollmentCreated("Technology").Return()
	f.cache.EXPECT().Invalidate(mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().PublishEnrollmentEvent(mock.Anything, mock.AnythingOfType("*service.EnrollmentEvent")).
		Run(func(_ context.Context, event *service.EnrollmentEvent) {
			assert.Equal(t, userID.String(), event.UserID)
			assert.Equal(t, "Go in Practice", event.CourseName)
		}).
		Return(nil)

	out, err := f.service.Enroll(ctx, userID, courseID)

	require.NoError(t, err)
	assert.Equal(t, courseID, out.CourseID)
	assert.Equal(t, "Go in Practice", out.CourseName)
	assert.Equal(t, 0, out.Progress)
	assert.Equal(t, f.now, out.EnrolledAt)
}

func TestEnrollmentService_Enroll_AlreadyEnrolled(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	userID, courseID := uuid.New(), uuid.New()

	f.inTransaction()
	f.courseRepo.EXPECT().FindByID(mock.Anything, courseID).Return(&entity.Course{ID: courseID}, nil)
	f.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
	f.enrollmentRepo.EXPECT().FindByUserAndCourse(mock.Anything, userID, courseID).
		Return(entity.NewEnrollment(userID, courseID, f.now), nil)

	out, err := f.service.Enroll(ctx, userID, courseID)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyEnrolled)
}

func TestEnrollmentService_Enroll_ConcurrentDuplicateInsert(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	userID, courseID := uuid.New(), uuid.New()

	f.inTransaction()
	f.courseRepo.EXPECT().FindByID(mock.Anything, courseID).Return(&entity.Course{ID: courseID}, nil)
	f.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
	f.enrollmentRepo.EXPECT().FindByUserAndCourse(mock.Anything, userID, courseID).Return(nil, repository.ErrEnrollmentNotFound)
	f.enrollmentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrAlreadyEnrolled)

	_, err := f.service.Enroll(ctx, userID, courseID)

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyEnrolled)
}

func TestEnrollmentService_Enroll_CourseNotFound(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	userID, courseID := uuid.New(), uuid.New()

	f.inTransaction()
	f.courseRepo.EXPECT().FindByID(mock.Anything, courseID).Return(nil, repository.ErrCourseNotFound)

	_, err := f.service.Enroll(ctx, userID, courseID)

	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}

func TestEnrollmentService_Enroll_UserNotFound(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	userID, courseID := uuid.New(), uuid.New()

	f.inTransaction()
	f.courseRepo.EXPECT().FindByID(mock.Anything, courseID).Return(&entity.Course{ID: courseID}, nil)
	f.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	_, err := f.service.Enroll(ctx, userID, courseID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestEnrollmentService_Enroll_PublishFailureKeepsEnrollment(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	userID, courseID := uuid.New(), uuid.New()

	f.inTransaction()
	f.courseRepo.EXPECT().FindByID(mock.Anything, courseID).Return(&entity.Course{ID: courseID, Name: "Design 101", Category: entity.CategoryDesign}, nil)
	f.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
	f.enrollmentRepo.EXPECT().FindByUserAndCourse(mock.Anything, userID, courseID).Return(nil, repository.ErrEnrollmentNotFound)
	f.enrollmentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.courseRepo.EXPECT().IncrementStudents(mock.Anything, courseID).Return(nil)
	f.metrics.EXPECT().EnrollmentCreated("Design").Return()
	f.cache.EXPECT().Invalidate(mock.Anything).Return(errors.New("redis down"))
	f.publisher.EXPECT().PublishEnrollmentEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	out, err := f.service.Enroll(ctx, userID, courseID)

	require.NoError(t, err)
	assert.Equal(t, "Design 101", out.CourseName)
}

func TestEnrollmentService_UpdateProgress_OutOfRange(t *testing.T) {
	f := newEnrollmentFixture(t)

	for _, progress := range []int{-1, 101} {
		_, err := f.service.UpdateProgress(context.Background(), uuid.New(), uuid.New(), usecase.UpdateProgressInput{Progress: progress})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidProgress)
	}
}

func TestEnrollmentService_UpdateProgress_NotEnrolled(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	userID, courseID := uuid.New(), uuid.New()

	f.enrollmentRepo.EXPECT().FindByUserAndCourse(ctx, userID, courseID).Return(nil, repository.ErrEnrollmentNotFound)

	_, err := f.service.UpdateProgress(ctx, userID, courseID, usecase.UpdateProgressInput{Progress: 50})

	assert.ErrorIs(t, err, domainerrors.ErrNotEnrolled)
}

func TestEnrollmentService_UpdateProgress_UncompleteKeepsCompletedAt(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	userID, courseID := uuid.New(), uuid.New()

	completedAt := f.now.Add(-24 * time.Hour)
	enrollment := entity.NewEnrollment(userID, courseID, f.now.Add(-48*time.Hour))
	enrollment.Progress = 100
	enrollment.Completed = true
	enrollment.CompletedAt = &completedAt

	f.enrollmentRepo.EXPECT().FindByUserAndCourse(ctx, userID, courseID).Return(enrollment, nil)
	f.enrollmentRepo.EXPECT().UpdateProgress(ctx, enrollment).Return(nil)

	completed := false
	got, err := f.service.UpdateProgress(ctx, userID, courseID, usecase.UpdateProgressInput{Progress: 40, Completed: &completed})

	require.NoError(t, err)
	assert.Equal(t, 40, got.Progress)
	assert.False(t, got.Completed)
	require.NotNil(t, got.CompletedAt)
	assert.Equal(t, completedAt, *got.CompletedAt)
	assert.Equal(t, f.now, got.LastAccessed)
}

func TestEnrollmentService_UpdateProgress_CompleteStampsCompletedAt(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	userID, courseID := uuid.New(), uuid.New()
	enrollment := entity.NewEnrollment(userID, courseID, f.now.Add(-time.Hour))

	f.enrollmentRepo.EXPECT().FindByUserAndCourse(ctx, userID, courseID).Return(enrollment, nil)
	f.enrollmentRepo.EXPECT().UpdateProgress(ctx, enrollment).Return(nil)

	completed := true
	got, err := f.service.UpdateProgress(ctx, userID, courseID, usecase.UpdateProgressInput{Progress: 30, Completed: &completed})

	require.NoError(t, err)
	assert.Equal(t, 30, got.Progress, "progress is not inferred from completion")
	assert.True(t, got.Completed)
	require.NotNil(t, got.CompletedAt)
	assert.Equal(t, f.now, *got.CompletedAt)
}

func TestEnrollmentService_GetProgress_NotEnrolled(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	userID, courseID := uuid.New(), uuid.New()

	f.enrollmentRepo.EXPECT().FindByUserAndCourse(ctx, userID, courseID).Return(nil, repository.ErrEnrollmentNotFound)

	_, err := f.service.GetProgress(ctx, userID, courseID)

	assert.ErrorIs(t, err, domainerrors.ErrNotEnrolled)
}

func TestEnrollmentService_Unenroll_ReturnsCourseName(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	userID, courseID := uuid.New(), uuid.New()
	enrollment := entity.NewEnrollment(userID, courseID, f.now)

	f.enrollmentRepo.EXPECT().FindByUserAndCourse(ctx, userID, courseID).Return(enrollment, nil)
	f.enrollmentRepo.EXPECT().Delete(ctx, enrollment.ID).Return(nil)
	f.metrics.EXPECT().EnrollmentRemoved().Return()
	f.courseRepo.EXPECT().FindByID(ctx, courseID).Return(&entity.Course{ID: courseID, Name: "Go in Practice", StudentsEnrolled: 8}, nil)

	name, err := f.service.Unenroll(ctx, userID, courseID)

	require.NoError(t, err)
	assert.Equal(t, "Go in Practice", name)
}

func TestEnrollmentService_Unenroll_DeletedCourse(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	userID, courseID := uuid.New(), uuid.New()
	enrollment := entity.NewEnrollment(userID, courseID, f.now)

	f.enrollmentRepo.EXPECT().FindByUserAndCourse(ctx, userID, courseID).Return(enrollment, nil)
	f.enrollmentRepo.EXPECT().Delete(ctx, enrollment.ID).Return(nil)
	f.metrics.EXPECT().EnrollmentRemoved().Return()
	f.courseRepo.EXPECT().FindByID(ctx, courseID).Return(nil, repository.ErrCourseNotFound)

	name, err := f.service.Unenroll(ctx, userID, courseID)

	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestEnrollmentService_Unenroll_NotEnrolled(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	userID, courseID := uuid.New(), uuid.New()

	f.enrollmentRepo.EXPECT().FindByUserAndCourse(ctx, userID, courseID).Return(nil, repository.ErrEnrollmentNotFound)

	_, err := f.service.Unenroll(ctx, userID, courseID)

	assert.ErrorIs(t, err, domainerrors.ErrNotEnrolled)
}

func TestEnrollmentService_ListEnrolled(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	kept, deleted := uuid.New(), uuid.New()

	first := entity.NewEnrollment(userID, kept, f.now)
	first.Progress = 50
	second := entity.NewEnrollment(userID, deleted, f.now.Add(-time.Hour))
	second.Progress = 100
	second.Completed = true

	f.enrollmentRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.Enrollment{first, second}, nil)
	f.courseRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{kept, deleted}).Return([]*entity.Course{{ID: kept, Name: "Kept"}}, nil)

	out, err := f.service.ListEnrolled(ctx, userID)

	require.NoError(t, err)
	require.Len(t, out.Courses, 2)
	assert.Equal(t, "Kept", out.Courses[0].Course.Name)
	assert.Nil(t, out.Courses[1].Course)
	assert.Equal(t, entity.EnrollmentStats{
		TotalCourses:      2,
		CompletedCourses:  1,
		InProgressCourses: 1,
		NotStarted:        0,
		AverageProgress:   75,
	}, out.Stats)
}

func TestEnrollmentService_Rate_FoldsIntoAverage(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	userID, courseID := uuid.New(), uuid.New()
	course := &entity.Course{ID: courseID, Rating: entity.Rating{Average: 4.0, Count: 2}}

	f.inTransaction()
	f.courseRepo.EXPECT().FindByIDForUpdate(ctx, courseID).Return(course, nil)
	f.enrollmentRepo.EXPECT().FindByUserAndCourse(ctx, userID, courseID).Return(entity.NewEnrollment(userID, courseID, f.now), nil)
	f.courseRepo.EXPECT().UpdateRating(ctx, courseID, entity.Rating{Average: 4.3, Count: 3}).Return(nil)
	f.metrics.EXPECT().CourseRated(5).Return()
	f.cache.EXPECT().Invalidate(ctx).Return(nil).Once()

	out, err := f.service.Rate(ctx, userID, courseID, usecase.RateInput{Rating: 5, Review: "great"})

	require.NoError(t, err)
	assert.InDelta(t, 4.3, out.AverageRating, 1e-9)
	assert.Equal(t, 3, out.TotalRatings)
}

func TestEnrollmentService_Rate_CacheFailureKeepsRating(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	userID, courseID := uuid.New(), uuid.New()

	f.inTransaction()
	f.courseRepo.EXPECT().FindByIDForUpdate(ctx, courseID).Return(&entity.Course{ID: courseID}, nil)
	f.enrollmentRepo.EXPECT().FindByUserAndCourse(ctx, userID, courseID).Return(entity.NewEnrollment(userID, courseID, f.now), nil)
	f.courseRepo.EXPECT().UpdateRating(ctx, courseID, entity.Rating{Average: 4, Count: 1}).Return(nil)
	f.metrics.EXPECT().CourseRated(4).Return()
	f.cache.EXPECT().Invalidate(ctx).Return(errors.New("redis down"))

	out, err := f.service.Rate(ctx, userID, courseID, usecase.RateInput{Rating: 4})

	require.NoError(t, err)
	assert.InDelta(t, 4.0, out.AverageRating, 1e-9)
	assert.Equal(t, 1, out.TotalRatings)
}

func TestEnrollmentService_Rate_NotEnrolled(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	userID, courseID := uuid.New(), uuid.New()

	f.inTransaction()
	f.courseRepo.EXPECT().FindByIDForUpdate(ctx, courseID).Return(&entity.Course{ID: courseID}, nil)
	f.enrollmentRepo.EXPECT().FindByUserAndCourse(ctx, userID, courseID).Return(nil, repository.ErrEnrollmentNotFound)

	_, err := f.service.Rate(ctx, userID, courseID, usecase.RateInput{Rating: 4})

	assert.ErrorIs(t, err, domainerrors.ErrNotEnrolledToRate)
}

func TestEnrollmentService_Rate_CourseNotFound(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	userID, courseID := uuid.New(), uuid.New()

	f.inTransaction()
	f.courseRepo.EXPECT().FindByIDForUpdate(ctx, courseID).Return(nil, repository.ErrCourseNotFound)

	_, err := f.service.Rate(ctx, userID, courseID, usecase.RateInput{Rating: 4})

	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}

func TestEnrollmentService_Rate_OutOfRange(t *testing.T) {
	f := newEnrollmentFixture(t)

	for _, rating := range []int{0, 6} {
		_, err := f.service.Rate(context.Background(), uuid.New(), uuid.New(), usecase.RateInput{Rating: rating})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
	}
}
