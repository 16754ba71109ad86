package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"booksy/config"
	"booksy/internal/domain/entity"
	domainerrors "booksy/internal/domain/errors"
	"booksy/internal/domain/repository"
	"booksy/internal/domain/service"
	mockRepo "booksy/internal/mocks/repository"
	mockSvc "booksy/internal/mocks/service"
	"booksy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminFixture struct {
	courseRepo *mockRepo.MockCourseRepository
	userRepo   *mockRepo.MockUserRepository
	hasher     *mockSvc.MockPasswordHasher
	tokens     *mockSvc.MockTokenService
	cache      *mockSvc.MockCatalogCache
	service    usecase.AdminUsecase
}

func newAdminFixture(t *testing.T, admin *config.AdminConfig) *adminFixture {
	t.Helper()

	f := &adminFixture{
		courseRepo: mockRepo.NewMockCourseRepository(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		hasher:     mockSvc.NewMockPasswordHasher(t),
		tokens:     mockSvc.NewMockTokenService(t),
		cache:      mockSvc.NewMockCatalogCache(t),
	}

	cfg := &config.Config{
		Admin: admin,
		Auth:  &config.AuthConfig{AdminTokenTTL: 24 * time.Hour},
	}
	f.service = NewAdminService(AdminServiceParams{
		CourseRepo:   f.courseRepo,
		UserRepo:     f.userRepo,
		Hasher:       f.hasher,
		TokenService: f.tokens,
		Cache:        f.cache,
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return f
}

var testAdmin = &config.AdminConfig{Email: "admin@booksy.com", PasswordHash: "admin-hash"}

func TestAdminService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newAdminFixture(t, testAdmin)
		f.hasher.EXPECT().Check("s3cret", "admin-hash").Return(true)
		f.tokens.EXPECT().
			GenerateToken(AdminSubject("admin@booksy.com"), "admin@booksy.com", []string{"admin"}, service.TokenTypeAdmin, 24*time.Hour).
			Return("admin-token", nil)

		out, err := f.service.Login(ctx, "Admin@Booksy.com", "s3cret")

		require.NoError(t, err)
		assert.Equal(t, "admin-token", out.Token)
		assert.Equal(t, usecase.AdminIdentity{Email: "admin@booksy.com", Role: entity.RoleAdmin}, out.Admin)
	})

	t.Run("wrong email", func(t *testing.T) {
		f := newAdminFixture(t, testAdmin)

		_, err := f.service.Login(ctx, "someone@booksy.com", "s3cret")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("not configured", func(t *testing.T) {
		f := newAdminFixture(t, nil)

		_, err := f.service.Login(ctx, "admin@booksy.com", "s3cret")

		assert.ErrorIs(t, err, domainerrors.ErrAdminNotConfigured)
	})
}

func TestAdminService_Verify(t *testing.T) {
	f := newAdminFixture(t, testAdmin)

	identity, err := f.service.Verify(context.Background(), "admin@booksy.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, identity.Role)

	_, err = f.service.Verify(context.Background(), "former-admin@booksy.com")
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAdminService_CreateCourse_AppliesDefaults(t *testing.T) {
	f := newAdminFixture(t, testAdmin)
	ctx := context.Background()
	price := 99.0

	f.courseRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Course")).Return(nil)
	f.cache.EXPECT().Invalidate(ctx).Return(nil)

	course, err := f.service.CreateCourse(ctx, usecase.CourseInput{
		Name:          "Go in Practice",
		Title:         "Idiomatic Go",
		Description:   "Services in Go",
		OriginalPrice: &price,
		Category:      "Technology",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, course.ID)
	assert.True(t, course.IsActive)
	assert.Equal(t, entity.LevelBeginner, course.Level)
	assert.Equal(t, entity.DefaultInstructor, course.Instructor)
	assert.Equal(t, entity.DefaultDuration, course.Duration)
	assert.Equal(t, []string{"Basic knowledge required"}, course.Requirements)
	assert.Equal(t, []string{"Learn new skills"}, course.LearningOutcomes)
	assert.Equal(t, []string{"popular"}, course.Tags)
	assert.Equal(t, 99.0, course.OriginalPrice)
}

func TestAdminService_CreateCourse_RejectsUnknownCategory(t *testing.T) {
	f := newAdminFixture(t, testAdmin)

	_, err := f.service.CreateCourse(context.Background(), usecase.CourseInput{
		Name:        "Cooking",
		Title:       "Cooking",
		Description: "Cooking",
		Category:    "Cooking",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCourse)
}

func TestAdminService_UpdateCourse_MergesFields(t *testing.T) {
	f := newAdminFixture(t, testAdmin)
	ctx := context.Background()
	existing := &entity.Course{
		ID:          uuid.New(),
		Name:        "Intro",
		Title:       "Intro title",
		Description: "Intro description",
		Category:    entity.CategoryFree,
		IsFree:      true,
		Price:       entity.FreePrice,
		Tags:        []string{"popular"},
	}
	price := 49.0

	f.courseRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	f.courseRepo.EXPECT().Update(ctx, existing).
		RunAndReturn(func(_ context.Context, course *entity.Course) error {
			course.ApplyPricingRules()

			return nil
		})
	f.cache.EXPECT().Invalidate(ctx).Return(nil)

	got, err := f.service.UpdateCourse(ctx, existing.ID, usecase.CourseInput{
		Category:      "Business",
		OriginalPrice: &price,
	})

	require.NoError(t, err)
	assert.Equal(t, "Intro", got.Name)
	assert.Equal(t, entity.CategoryBusiness, got.Category)
	assert.False(t, got.IsFree)
	assert.Equal(t, "$49", got.Price)
	assert.Equal(t, []string{"popular"}, got.Tags)
}

func TestAdminService_UpdateCourse_NotFound(t *testing.T) {
	f := newAdminFixture(t, testAdmin)
	ctx := context.Background()
	id := uuid.New()

	f.courseRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCourseNotFound)

	_, err := f.service.UpdateCourse(ctx, id, usecase.CourseInput{Name: "x"})

	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}

func TestAdminService_DeleteCourse(t *testing.T) {
	f := newAdminFixture(t, testAdmin)
	ctx := context.Background()
	id := uuid.New()

	f.courseRepo.EXPECT().Delete(ctx, id).Return(nil)
	f.cache.EXPECT().Invalidate(ctx).Return(nil)

	require.NoError(t, f.service.DeleteCourse(ctx, id))

	missing := uuid.New()
	f.courseRepo.EXPECT().Delete(ctx, missing).Return(repository.ErrCourseNotFound)

	assert.ErrorIs(t, f.service.DeleteCourse(ctx, missing), domainerrors.ErrCourseNotFound)
}

func TestAdminService_Dashboard(t *testing.T) {
	f := newAdminFixture(t, testAdmin)
	ctx := context.Background()

	f.courseRepo.EXPECT().Totals(ctx).Return(int64(12), int64(340), nil)
	f.userRepo.EXPECT().Count(ctx).Return(int64(57), nil)
	f.courseRepo.EXPECT().TopByStudents(ctx, 5).Return([]*entity.Course{{Name: "Top"}}, nil)
	f.courseRepo.EXPECT().Recent(ctx, 5).Return([]*entity.Course{{Name: "New"}}, nil)

	out, err := f.service.Dashboard(ctx)

	require.NoError(t, err)
	assert.Equal(t, entity.DashboardStats{TotalCourses: 12, TotalStudents: 340, TotalUsers: 57}, out.Stats)
	assert.Equal(t, "Top", out.PopularCourses[0].Name)
	assert.Equal(t, "New", out.RecentCourses[0].Name)
}
