package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"booksy/config"
	deliverycontext "booksy/internal/delivery/context"
	"booksy/internal/domain/entity"
	domainerrors "booksy/internal/domain/errors"
	"booksy/internal/domain/repository"
	"booksy/internal/domain/service"
	"booksy/internal/errors"
	"booksy/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	featuredMinRating   = 4.0
	featuredMinStudents = 100
	featuredLimit       = 6
	freeCoursesLimit    = 12
	relatedLimit        = 4
	suggestionLimit     = 5
	suggestionMinLength = 2
	maxListOffset       = math.MaxInt32
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	courseRepo repository.CourseRepository
	cache      service.CatalogCache
	qrcode     service.QRCodeService
	cfg        *config.Config
	logger     *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CourseRepo repository.CourseRepository
	Cache      service.CatalogCache
	QRCode     service.QRCodeService
	Config     *config.Config
	Logger     *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		courseRepo: params.CourseRepo,
		cache:      params.Cache,
		qrcode:     params.QRCode,
		cfg:        params.Config,
		logger:     params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCourses filters, sorts and paginates the active catalog.
func (srv *catalogService) ListCourses(ctx context.Context, input usecase.ListCoursesInput) (*usecase.CourseListOutput, error) {
	filter, err := srv.buildFilter(input)
	if err != nil {
		return nil, err
	}

	var output usecase.CourseListOutput
	if srv.fromCache(ctx, filterCacheKey(filter), &output) {
		return &output, nil
	}

	page, err := srv.courseRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	facets, err := srv.courseRepo.Facets(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog facets")
	}

	output = usecase.CourseListOutput{
		Courses:     page.Courses,
		TotalPages:  totalPages(page.Total, filter.PageSize),
		CurrentPage: filter.Page,
		Total:       page.Total,
		Filters: usecase.CatalogFilters{
			Categories: facets.Categories,
			Levels:     facets.Levels,
			PriceRange: usecase.PriceRange{Min: facets.MinPrice, Max: facets.MaxPrice},
		},
	}
	srv.toCache(ctx, filterCacheKey(filter), &output)

	return &output, nil
}

func (srv *catalogService) buildFilter(input usecase.ListCoursesInput) (entity.CourseFilter, error) {
	sortKey, ok := entity.ParseSortKey(input.SortBy)
	if !ok {
		return entity.CourseFilter{}, domainerrors.ErrValidationFailed.WithDetails("unsupported sortBy: " + input.SortBy)
	}

	page := input.Page
	if page < 1 {
		page = 1
	}

	limit := input.Limit
	if limit <= 0 {
		limit = srv.cfg.Catalog.DefaultPageSize
	}
	if limit > srv.cfg.Catalog.MaxPageSize {
		limit = srv.cfg.Catalog.MaxPageSize
	}

	if page-1 > maxListOffset/limit {
		return entity.CourseFilter{}, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("page must not exceed %d", maxListOffset/limit+1))
	}

	return entity.CourseFilter{
		Category:   strings.TrimSpace(input.Category),
		Search:     strings.TrimSpace(input.Search),
		Level:      strings.TrimSpace(input.Level),
		MinPrice:   input.MinPrice,
		MaxPrice:   input.MaxPrice,
		FreeOnly:   input.FreeOnly,
		SortBy:     sortKey,
		Descending: !strings.EqualFold(input.SortOrder, "asc"),
		Page:       page,
		PageSize:   limit,
	}, nil
}

func totalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}

	return int(math.Ceil(float64(total) / float64(pageSize)))
}

func filterCacheKey(filter entity.CourseFilter) string {
	return fmt.Sprintf("list:c=%s|q=%s|l=%s|min=%s|max=%s|free=%t|s=%s|d=%t|p=%d|n=%d",
		strings.ToLower(filter.Category),
		strings.ToLower(filter.Search),
		strings.ToLower(filter.Level),
		formatBound(filter.MinPrice),
		formatBound(filter.MaxPrice),
		filter.FreeOnly,
		filter.SortBy,
		filter.Descending,
		filter.Page,
		filter.PageSize,
	)
}

func formatBound(bound *float64) string {
	if bound == nil {
		return "-"
	}

	return fmt.Sprintf("%g", *bound)
}

// FeaturedCourses returns well rated and popular courses.
func (srv *catalogService) FeaturedCourses(ctx context.Context) ([]*entity.Course, error) {
	var courses []*entity.Course
	if srv.fromCache(ctx, "featured", &courses) {
		return courses, nil
	}

	courses, err := srv.courseRepo.FindFeatured(ctx, featuredMinRating, featuredMinStudents, featuredLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find featured courses")
	}
	srv.toCache(ctx, "featured", courses)

	return courses, nil
}

// FreeCourses returns free courses by popularity.
func (srv *catalogService) FreeCourses(ctx context.Context) ([]*entity.Course, error) {
	var courses []*entity.Course
	if srv.fromCache(ctx, "free", &courses) {
		return courses, nil
	}

	courses, err := srv.courseRepo.FindFree(ctx, freeCoursesLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find free courses")
	}
	srv.toCache(ctx, "free", courses)

	return courses, nil
}

// GetCourse returns a course and related courses. Inactive courses are still served by ID.
func (srv *catalogService) GetCourse(ctx context.Context, id uuid.UUID) (*usecase.CourseDetailOutput, error) {
	course, err := srv.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCourseLookupError(err)
	}

	related, err := srv.courseRepo.FindRelated(ctx, course.Category, course.ID, relatedLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find related courses")
	}

	return &usecase.CourseDetailOutput{Course: course, Related: related}, nil
}

// SearchSuggestions returns nothing for queries shorter than two characters.
func (srv *catalogService) SearchSuggestions(ctx context.Context, query string) ([]*entity.Course, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < suggestionMinLength {
		return []*entity.Course{}, nil
	}

	courses, err := srv.courseRepo.Suggest(ctx, query, suggestionLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search courses")
	}

	return courses, nil
}

// Categories aggregates the active catalog per category.
func (srv *catalogService) Categories(ctx context.Context) ([]*entity.CategorySummary, error) {
	var summaries []*entity.CategorySummary
	if srv.fromCache(ctx, "categories", &summaries) {
		return summaries, nil
	}

	summaries, err := srv.courseRepo.CategorySummaries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize categories")
	}
	srv.toCache(ctx, "categories", summaries)

	return summaries, nil
}

// CourseQRCode renders a share QR code for an existing course.
func (srv *catalogService) CourseQRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.courseRepo.FindByID(ctx, id); err != nil {
		return nil, mapCourseLookupError(err)
	}

	png, err := srv.qrcode.GenerateCourseQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate course QR code")
	}

	return png, nil
}

// fromCache reports a hit. Cache failures are logged and treated as a miss.
func (srv *catalogService) fromCache(ctx context.Context, key string, dest any) bool {
	err := srv.cache.Get(ctx, key, dest)
	if err == nil {
		return true
	}

	if !errors.Is(err, service.ErrCacheMiss) {
		srv.log(ctx).Warn("Catalog cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	return false
}

func (srv *catalogService) toCache(ctx context.Context, key string, value any) {
	if err := srv.cache.Set(ctx, key, value); err != nil {
		srv.log(ctx).Warn("Catalog cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}
