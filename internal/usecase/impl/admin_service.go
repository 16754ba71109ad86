package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"booksy/config"
	deliverycontext "booksy/internal/delivery/context"
	"booksy/internal/domain/entity"
	domainerrors "booksy/internal/domain/errors"
	"booksy/internal/domain/repository"
	"booksy/internal/domain/service"
	"booksy/internal/errors"
	"booksy/internal/usecase"
	"booksy/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const dashboardListSize = 5

var (
	defaultRequirements     = []string{"Basic knowledge required"}
	defaultLearningOutcomes = []string{"Learn new skills"}
	defaultTags             = []string{"popular"}
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	courseRepo    repository.CourseRepository
	userRepo      repository.UserRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	cache         service.CatalogCache
	admin         *config.AdminConfig
	adminTokenTTL time.Duration
	logger        *slog.Logger
	now           func() time.Time
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	CourseRepo   repository.CourseRepository
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Cache        service.CatalogCache
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		courseRepo:    params.CourseRepo,
		userRepo:      params.UserRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		cache:         params.Cache,
		admin:         params.Config.Admin,
		adminTokenTTL: params.Config.Auth.AdminTokenTTL,
		logger:        params.Logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) configured() bool {
	return srv.admin != nil && srv.admin.Email != "" && srv.admin.PasswordHash != ""
}

// AdminSubject derives the stable token subject for an administrator email.
func AdminSubject(email string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("admin:"+util.NormalizeEmail(email)))
}

// Login checks the configured administrator credential and issues an admin token.
func (srv *adminService) Login(ctx context.Context, email, password string) (*usecase.AdminLoginOutput, error) {
	if !srv.configured() {
		return nil, domainerrors.ErrAdminNotConfigured
	}

	email = strings.TrimSpace(email)
	if !strings.EqualFold(email, srv.admin.Email) || !srv.hasher.Check(password, srv.admin.PasswordHash) {
		srv.log(ctx).Warn("Rejected admin login", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	identity := usecase.AdminIdentity{Email: srv.admin.Email, Role: entity.RoleAdmin}
	token, err := srv.tokenService.GenerateToken(
		AdminSubject(identity.Email),
		identity.Email,
		entity.Roles{entity.RoleAdmin}.ToStrings(),
		service.TokenTypeAdmin,
		srv.adminTokenTTL,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate admin token")
	}

	return &usecase.AdminLoginOutput{Token: token, Admin: identity}, nil
}

// Verify confirms that a token email still belongs to the configured administrator.
func (srv *adminService) Verify(_ context.Context, email string) (*usecase.AdminIdentity, error) {
	if !srv.configured() {
		return nil, domainerrors.ErrAdminNotConfigured
	}
	if !strings.EqualFold(email, srv.admin.Email) {
		return nil, domainerrors.ErrTokenInvalid
	}

	return &usecase.AdminIdentity{Email: srv.admin.Email, Role: entity.RoleAdmin}, nil
}

// ListCourses returns every course, active or not, newest first.
func (srv *adminService) ListCourses(ctx context.Context) ([]*entity.Course, error) {
	courses, err := srv.courseRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	return courses, nil
}

// CreateCourse stores a new course with defaults for the optional fields.
func (srv *adminService) CreateCourse(ctx context.Context, input usecase.CourseInput) (*entity.Course, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, domainerrors.ErrInvalidCourse.WithDetails("name, title and description are required")
	}

	now := srv.now()
	course := &entity.Course{
		ID:               uuid.New(),
		Lessons:          []entity.Lesson{},
		Requirements:     defaultRequirements,
		LearningOutcomes: defaultLearningOutcomes,
		Tags:             defaultTags,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := mergeCourseInput(course, input); err != nil {
		return nil, err
	}
	course.ApplyDefaults()

	if err := srv.courseRepo.Create(ctx, course); err != nil {
		return nil, errors.Wrap(err, "failed to create course")
	}

	srv.invalidateCatalog(ctx)
	srv.log(ctx).Info("Course created", slog.String("courseID", course.ID.String()))

	return course, nil
}

// UpdateCourse merges the provided fields into the stored course.
func (srv *adminService) UpdateCourse(ctx context.Context, id uuid.UUID, input usecase.CourseInput) (*entity.Course, error) {
	course, err := srv.courseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCourseLookupError(err)
	}

	if err := mergeCourseInput(course, input); err != nil {
		return nil, err
	}
	course.UpdatedAt = srv.now()

	if err := srv.courseRepo.Update(ctx, course); err != nil {
		return nil, mapCourseLookupError(err)
	}

	srv.invalidateCatalog(ctx)
	srv.log(ctx).Info("Course updated", slog.String("courseID", course.ID.String()))

	return course, nil
}

// DeleteCourse removes a course. Enrollments referencing it are left in place.
func (srv *adminService) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	if err := srv.courseRepo.Delete(ctx, id); err != nil {
		return mapCourseLookupError(err)
	}

	srv.invalidateCatalog(ctx)
	srv.log(ctx).Info("Course deleted", slog.String("courseID", id.String()))

	return nil
}

// Dashboard aggregates catalog and user totals.
func (srv *adminService) Dashboard(ctx context.Context) (*usecase.DashboardOutput, error) {
	totalCourses, totalStudents, err := srv.courseRepo.Totals(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load course totals")
	}

	totalUsers, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	popular, err := srv.courseRepo.TopByStudents(ctx, dashboardListSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load popular courses")
	}

	recent, err := srv.courseRepo.Recent(ctx, dashboardListSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recent courses")
	}

	return &usecase.DashboardOutput{
		Stats: entity.DashboardStats{
			TotalCourses:  totalCourses,
			TotalStudents: totalStudents,
			TotalUsers:    totalUsers,
		},
		PopularCourses: popular,
		RecentCourses:  recent,
	}, nil
}

func (srv *adminService) invalidateCatalog(ctx context.Context) {
	if err := srv.cache.Invalidate(ctx); err != nil {
		srv.log(ctx).Warn("Failed to invalidate catalog cache", slog.Any("error", err))
	}
}

// mergeCourseInput copies the non-empty input fields onto course.
// Pricing is settled later by the repository through ApplyPricingRules.
func mergeCourseInput(course *entity.Course, input usecase.CourseInput) error {
	setString(&course.Name, input.Name)
	setString(&course.Title, input.Title)
	setString(&course.Description, input.Description)
	setString(&course.Duration, input.Duration)
	setString(&course.Instructor, input.Instructor)
	setString(&course.Image, input.Image)

	if input.Category != "" {
		category := entity.Category(strings.TrimSpace(input.Category))
		if !category.IsValid() {
			return domainerrors.ErrInvalidCourse.WithDetails("unknown category: " + input.Category)
		}
		course.Category = category
		course.IsFree = category == entity.CategoryFree
	}

	if input.Level != "" {
		level := entity.Level(strings.TrimSpace(input.Level))
		if !level.IsValid() {
			return domainerrors.ErrInvalidCourse.WithDetails("unknown level: " + input.Level)
		}
		course.Level = level
	}

	if input.OriginalPrice != nil {
		course.OriginalPrice = *input.OriginalPrice
		course.Price = ""
	}
	setString(&course.Price, input.Price)

	if input.IsFree != nil {
		course.IsFree = *input.IsFree
	}
	if input.IsActive != nil {
		course.IsActive = *input.IsActive
	}

	if input.Lessons != nil {
		course.Lessons = input.Lessons
	}
	if len(input.Requirements) > 0 {
		course.Requirements = input.Requirements
	}
	if len(input.LearningOutcomes) > 0 {
		course.LearningOutcomes = input.LearningOutcomes
	}
	if len(input.Tags) > 0 {
		course.Tags = input.Tags
	}

	if course.Category == "" {
		return domainerrors.ErrInvalidCourse.WithDetails("category is required")
	}

	return nil
}

func setString(dst *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*dst = value
	}
}
