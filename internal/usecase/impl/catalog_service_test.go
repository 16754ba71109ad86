package impl

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"

	"booksy/config"
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
)

func newCatalogTestService(t *testing.T) (usecase.CatalogUsecase, *mockRepo.MockCourseRepository, *mockSvc.MockCatalogCache, *mockSvc.MockQRCodeService) {
	t.Helper()

	courseRepo := mockRepo.NewMockCourseRepository(t)
	cache := mockSvc.NewMockCatalogCache(t)
	qr := mockSvc.NewMockQRCodeService(t)

	cfg := &config.Config{Catalog: &config.CatalogConfig{DefaultPageSize: 12, MaxPageSize: 100}}

	srv := NewCatalogService(CatalogServiceParams{
		CourseRepo: courseRepo,
		Cache:      cache,
		QRCode:     qr,
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return srv, courseRepo, cache, qr
}

func TestCatalogService_ListCourses_Defaults(t *testing.T) {
	srv, courseRepo, cache, _ := newCatalogTestService(t)
	ctx := context.Background()

	cache.EXPECT().Get(ctx, mock.AnythingOfType("string"), mock.Anything).Return(service.ErrCacheMiss)
	courseRepo.EXPECT().List(ctx, mock.AnythingOfType("entity.CourseFilter")).
		Run(func(_ context.Context, filter entity.CourseFilter) {
			assert.Equal(t, 1, filter.Page)
			assert.Equal(t, 12, filter.PageSize)
			assert.Equal(t, entity.SortByCreatedAt, filter.SortBy)
			assert.True(t, filter.Descending)
		}).
		Return(&entity.CoursePage{Courses: []*entity.Course{{Name: "A"}}, Total: 25}, nil)
	courseRepo.EXPECT().Facets(ctx).Return(&entity.CatalogFacets{
		Categories: []string{"Technology"},
		Levels:     []string{"Beginner"},
		MinPrice:   0,
		MaxPrice:   199,
	}, nil)
	cache.EXPECT().Set(ctx, mock.AnythingOfType("string"), mock.Anything).Return(nil)

	out, err := srv.ListCourses(ctx, usecase.ListCoursesInput{})

	require.NoError(t, err)
	assert.Equal(t, 3, out.TotalPages)
	assert.Equal(t, 1, out.CurrentPage)
	assert.Equal(t, int64(25), out.Total)
	assert.Equal(t, []string{"Technology"}, out.Filters.Categories)
	assert.Equal(t, usecase.PriceRange{Min: 0, Max: 199}, out.Filters.PriceRange)
}

func TestCatalogService_ListCourses_ClampsLimitAndParsesSort(t *testing.T) {
	srv, courseRepo, cache, _ := newCatalogTestService(t)
	ctx := context.Background()
	minPrice, maxPrice := 50.0, 150.0

	cache.EXPECT().Get(ctx, mock.Anything, mock.Anything).Return(service.ErrCacheMiss)
	courseRepo.EXPECT().List(ctx, mock.Anything).
		Run(func(_ context.Context, filter entity.CourseFilter) {
			assert.Equal(t, 100, filter.PageSize)
			assert.Equal(t, 2, filter.Page)
			assert.Equal(t, entity.SortByRating, filter.SortBy)
			assert.False(t, filter.Descending)
			assert.Equal(t, "Technology", filter.Category)
			assert.Equal(t, 50.0, *filter.MinPrice)
			assert.Equal(t, 150.0, *filter.MaxPrice)
		}).
		Return(&entity.CoursePage{Total: 0}, nil)
	courseRepo.EXPECT().Facets(ctx).Return(&entity.CatalogFacets{}, nil)
	cache.EXPECT().Set(ctx, mock.Anything, mock.Anything).Return(nil)

	out, err := srv.ListCourses(ctx, usecase.ListCoursesInput{
		Category:  "Technology",
		MinPrice:  &minPrice,
		MaxPrice:  &maxPrice,
		SortBy:    "rating.average",
		SortOrder: "asc",
		Page:      2,
		Limit:     500,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, out.TotalPages)
}

func TestCatalogService_ListCourses_RejectsUnknownSort(t *testing.T) {
	srv, _, _, _ := newCatalogTestService(t)

	_, err := srv.ListCourses(context.Background(), usecase.ListCoursesInput{SortBy: "price; DROP TABLE"})

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCatalogService_ListCourses_RejectsPageBeyondOffsetRange(t *testing.T) {
	srv, _, _, _ := newCatalogTestService(t)

	_, err := srv.ListCourses(context.Background(), usecase.ListCoursesInput{Page: math.MaxInt, Limit: 12})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Contains(t, appErr.Details(), "page must not exceed")
}

func TestCatalogService_ListCourses_CacheFailureFallsThrough(t *testing.T) {
	srv, courseRepo, cache, _ := newCatalogTestService(t)
	ctx := context.Background()

	cache.EXPECT().Get(ctx, mock.Anything, mock.Anything).Return(errors.New("redis unavailable"))
	courseRepo.EXPECT().List(ctx, mock.Anything).Return(&entity.CoursePage{Total: 1, Courses: []*entity.Course{{Name: "A"}}}, nil)
	courseRepo.EXPECT().Facets(ctx).Return(&entity.CatalogFacets{}, nil)
	cache.EXPECT().Set(ctx, mock.Anything, mock.Anything).Return(errors.New("redis unavailable"))

	out, err := srv.ListCourses(ctx, usecase.ListCoursesInput{})

	require.NoError(t, err)
	assert.Len(t, out.Courses, 1)
}

func TestCatalogService_FeaturedCourses_CacheHit(t *testing.T) {
	srv, _, cache, _ := newCatalogTestService(t)
	ctx := context.Background()

	cache.EXPECT().Get(ctx, "featured", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, dest any) error {
			*(dest.(*[]*entity.Course)) = []*entity.Course{{Name: "Cached"}}

			return nil
		})

	courses, err := srv.FeaturedCourses(ctx)

	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Cached", courses[0].Name)
}

func TestCatalogService_FeaturedCourses_UsesThresholds(t *testing.T) {
	srv, courseRepo, cache, _ := newCatalogTestService(t)
	ctx := context.Background()

	cache.EXPECT().Get(ctx, "featured", mock.Anything).Return(service.ErrCacheMiss)
	courseRepo.EXPECT().FindFeatured(ctx, 4.0, 100, 6).Return([]*entity.Course{{Name: "Top"}}, nil)
	cache.EXPECT().Set(ctx, "featured", mock.Anything).Return(nil)

	courses, err := srv.FeaturedCourses(ctx)

	require.NoError(t, err)
	assert.Len(t, courses, 1)
}

func TestCatalogService_GetCourse(t *testing.T) {
	srv, courseRepo, _, _ := newCatalogTestService(t)
	ctx := context.Background()
	course := &entity.Course{ID: uuid.New(), Category: entity.CategoryScience}

	courseRepo.EXPECT().FindByID(ctx, course.ID).Return(course, nil)
	courseRepo.EXPECT().FindRelated(ctx, entity.CategoryScience, course.ID, 4).Return([]*entity.Course{{Name: "Physics"}}, nil)

	out, err := srv.GetCourse(ctx, course.ID)

	require.NoError(t, err)
	assert.Equal(t, course, out.Course)
	assert.Len(t, out.Related, 1)
}

func TestCatalogService_GetCourse_NotFound(t *testing.T) {
	srv, courseRepo, _, _ := newCatalogTestService(t)
	ctx := context.Background()
	id := uuid.New()

	courseRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCourseNotFound)

	_, err := srv.GetCourse(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}

func TestCatalogService_SearchSuggestions(t *testing.T) {
	srv, courseRepo, _, _ := newCatalogTestService(t)
	ctx := context.Background()

	short, err := srv.SearchSuggestions(ctx, " g ")
	require.NoError(t, err)
	assert.Empty(t, short)

	courseRepo.EXPECT().Suggest(ctx, "go", 5).Return([]*entity.Course{{Name: "Go"}}, nil)

	found, err := srv.SearchSuggestions(ctx, "go")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestCatalogService_CourseQRCode(t *testing.T) {
	srv, courseRepo, _, qr := newCatalogTestService(t)
	ctx := context.Background()
	id := uuid.New()

	courseRepo.EXPECT().FindByID(ctx, id).Return(&entity.Course{ID: id}, nil)
	qr.EXPECT().GenerateCourseQR(id).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := srv.CourseQRCode(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}

func TestFilterCacheKey_DistinguishesFilters(t *testing.T) {
	minPrice := 10.0
	base := entity.CourseFilter{Category: "Technology", SortBy: entity.SortByName, Page: 1, PageSize: 12}
	withPrice := base
	withPrice.MinPrice = &minPrice

	assert.NotEqual(t, filterCacheKey(base), filterCacheKey(withPrice))
	assert.Equal(t, filterCacheKey(base), filterCacheKey(entity.CourseFilter{Category: "technology", SortBy: entity.SortByName, Page: 1, PageSize: 12}))
}
