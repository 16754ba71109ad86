// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "booksy/internal/delivery/context"
	"booksy/internal/domain/entity"
	domainerrors "booksy/internal/domain/errors"
	"booksy/internal/domain/repository"
	"booksy/internal/domain/service"
	"booksy/internal/errors"
	"booksy/internal/usecase"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

const tracerName = "booksy/usecase"

// enrollmentService implements the EnrollmentUsecase interface.
type enrollmentService struct {
	txManager      repository.TransactionManager
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
	publisher      service.EventPublisher
	cache          service.CatalogCache
	metrics        service.Metrics
	tracer         trace.Tracer
	logger         *slog.Logger
	now            func() time.Time
}

// EnrollmentServiceParams holds dependencies for EnrollmentService, injected by Fx.
type EnrollmentServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CourseRepo     repository.CourseRepository
	EnrollmentRepo repository.EnrollmentRepository
	Publisher      service.EventPublisher
	Cache          service.CatalogCache
	Metrics        service.Metrics
	TracerProvider trace.TracerProvider
	Logger         *slog.Logger
}

// NewEnrollmentService is the constructor for enrollmentService.
func NewEnrollmentService(params EnrollmentServiceParams) usecase.EnrollmentUsecase {
	return &enrollmentService{
		txManager:      params.TxManager,
		courseRepo:     params.CourseRepo,
		enrollmentRepo: params.EnrollmentRepo,
		publisher:      params.Publisher,
		cache:          params.Cache,
		metrics:        params.Metrics,
		tracer:         params.TracerProvider.Tracer(tracerName),
		logger:         params.Logger,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *enrollmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Enroll inserts the enrollment and bumps the course counter in one transaction.
func (srv *enrollmentService) Enroll(ctx context.Context, userID, courseID uuid.UUID) (*usecase.EnrollOutput, error) {
	ctx, span := srv.tracer.Start(ctx, "EnrollmentUsecase.Enroll", trace.WithAttributes(
		attribute.String("user.id", userID.String()),
		attribute.String("course.id", courseID.String()),
	))
	defer span.End()

	var (
		course     *entity.Course
		enrollment *entity.Enrollment
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		courseRepo := repoFactory.NewCourseRepository()
		userRepo := repoFactory.NewUserRepository()
		enrollmentRepo := repoFactory.NewEnrollmentRepository()

		found, err := courseRepo.FindByID(ctx, courseID)
		if err != nil {
			return mapCourseLookupError(err)
		}

		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		_, err = enrollmentRepo.FindByUserAndCourse(ctx, userID, courseID)
		if err == nil {
			return domainerrors.ErrAlreadyEnrolled
		}
		if !errors.Is(err, repository.ErrEnrollmentNotFound) {
			return errors.Wrap(err, "failed to check existing enrollment")
		}

		// TODO(payments): paid courses are enrolled without verifying a purchase until checkout exists.
		newEnrollment := entity.NewEnrollment(userID, courseID, srv.now())
		if err := enrollmentRepo.Create(ctx, newEnrollment); err != nil {
			if errors.Is(err, repository.ErrAlreadyEnrolled) {
				return domainerrors.ErrAlreadyEnrolled
			}

			return errors.Wrap(err, "failed to create enrollment")
		}

		if err := courseRepo.IncrementStudents(ctx, courseID); err != nil {
			return errors.Wrap(err, "failed to increment enrolled students")
		}

		found.StudentsEnrolled++
		course = found
		enrollment = newEnrollment

		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "enroll failed")

		return nil, err
	}

	srv.metrics.EnrollmentCreated(string(course.Category))
	srv.invalidateCatalog(ctx)
	srv.publishEnrollment(ctx, enrollment, course)

	srv.log(ctx).Info("User enrolled in course",
		slog.String("userID", userID.String()),
		slog.String("courseID", courseID.String()),
	)

	return &usecase.EnrollOutput{
		CourseID:   course.ID,
		CourseName: course.Name,
		EnrolledAt: enrollment.EnrolledAt,
		Progress:   enrollment.Progress,
	}, nil
}

// publishEnrollment hands the event to the worker. Failures are logged and never undo the enrollment.
func (srv *enrollmentService) publishEnrollment(ctx context.Context, enrollment *entity.Enrollment, course *entity.Course) {
	event := &service.EnrollmentEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    enrollment.ID.String(),
		UserID:     enrollment.UserID.String(),
		CourseID:   course.ID.String(),
		CourseName: course.Name,
		EnrolledAt: enrollment.EnrolledAt,
	}

	if err := srv.publisher.PublishEnrollmentEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish enrollment event",
			slog.String("eventID", event.EventID),
			slog.Any("error", err),
		)
	}
}

// invalidateCatalog drops cached listings after enrolled or rating counters change.
func (srv *enrollmentService) invalidateCatalog(ctx context.Context) {
	if err := srv.cache.Invalidate(ctx); err != nil {
		srv.log(ctx).Warn("Failed to invalidate catalog cache", slog.Any("error", err))
	}
}

// UpdateProgress records progress and, optionally, completion.
func (srv *enrollmentService) UpdateProgress(ctx context.Context, userID, courseID uuid.UUID, input usecase.UpdateProgressInput) (*entity.Enrollment, error) {
	if !entity.IsValidProgress(input.Progress) {
		return nil, domainerrors.ErrInvalidProgress
	}

	enrollment, err := srv.findEnrollment(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	enrollment.RecordProgress(input.Progress, input.Completed, srv.now())

	if err := srv.enrollmentRepo.UpdateProgress(ctx, enrollment); err != nil {
		if errors.Is(err, repository.ErrEnrollmentNotFound) {
			return nil, domainerrors.ErrNotEnrolled
		}

		return nil, errors.Wrap(err, "failed to update progress")
	}

	return enrollment, nil
}

// GetProgress returns the learner's enrollment in a course.
func (srv *enrollmentService) GetProgress(ctx context.Context, userID, courseID uuid.UUID) (*entity.Enrollment, error) {
	return srv.findEnrollment(ctx, userID, courseID)
}

// Unenroll deletes the enrollment. The course's enrolled counter is left unchanged.
func (srv *enrollmentService) Unenroll(ctx context.Context, userID, courseID uuid.UUID) (string, error) {
	enrollment, err := srv.findEnrollment(ctx, userID, courseID)
	if err != nil {
		return "", err
	}

	if err := srv.enrollmentRepo.Delete(ctx, enrollment.ID); err != nil {
		if errors.Is(err, repository.ErrEnrollmentNotFound) {
			return "", domainerrors.ErrNotEnrolled
		}

		return "", errors.Wrap(err, "failed to delete enrollment")
	}

	srv.metrics.EnrollmentRemoved()

	course, err := srv.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		if !errors.Is(err, repository.ErrCourseNotFound) {
			srv.log(ctx).Warn("Failed to load course after unenroll", slog.Any("error", err))
		}

		return "", nil
	}

	return course.Name, nil
}

// ListEnrolled returns every enrollment joined with its course summary, plus statistics.
func (srv *enrollmentService) ListEnrolled(ctx context.Context, userID uuid.UUID) (*usecase.EnrolledCoursesOutput, error) {
	enrollments, err := srv.enrollmentRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list enrollments")
	}

	courseIDs := make([]uuid.UUID, 0, len(enrollments))
	for _, enrollment := range enrollments {
		courseIDs = append(courseIDs, enrollment.CourseID)
	}

	courses, err := srv.courseRepo.FindByIDs(ctx, courseIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load enrolled courses")
	}

	byID := make(map[uuid.UUID]*entity.Course, len(courses))
	for _, course := range courses {
		byID[course.ID] = course
	}

	items := make([]*usecase.EnrolledCourse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		items = append(items, &usecase.EnrolledCourse{
			Enrollment: enrollment,
			Course:     byID[enrollment.CourseID],
		})
	}

	return &usecase.EnrolledCoursesOutput{
		Courses: items,
		Stats:   entity.ComputeEnrollmentStats(enrollments),
	}, nil
}

// Rate folds a rating into the course average while holding the course row lock.
func (srv *enrollmentService) Rate(ctx context.Context, userID, courseID uuid.UUID, input usecase.RateInput) (*usecase.RatingOutput, error) {
	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return nil, domainerrors.ErrInvalidRating
	}

	var rating entity.Rating
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		courseRepo := repoFactory.NewCourseRepository()
		enrollmentRepo := repoFactory.NewEnrollmentRepository()

		course, err := courseRepo.FindByIDForUpdate(ctx, courseID)
		if err != nil {
			return mapCourseLookupError(err)
		}

		if _, err := enrollmentRepo.FindByUserAndCourse(ctx, userID, courseID); err != nil {
			if errors.Is(err, repository.ErrEnrollmentNotFound) {
				return domainerrors.ErrNotEnrolledToRate
			}

			return errors.Wrap(err, "failed to check enrollment")
		}

		rating = course.Rating.Add(input.Rating)

		return courseRepo.UpdateRating(ctx, courseID, rating)
	})
	if err != nil {
		return nil, err
	}

	srv.metrics.CourseRated(input.Rating)
	srv.invalidateCatalog(ctx)
	if input.Review != "" {
		srv.log(ctx).Info("Course review received",
			slog.String("courseID", courseID.String()),
			slog.Int("rating", input.Rating),
			slog.String("review", input.Review),
		)
	}

	return &usecase.RatingOutput{
		AverageRating: rating.Average,
		TotalRatings:  rating.Count,
	}, nil
}

func (srv *enrollmentService) findEnrollment(ctx context.Context, userID, courseID uuid.UUID) (*entity.Enrollment, error) {
	enrollment, err := srv.enrollmentRepo.FindByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrEnrollmentNotFound) {
			return nil, domainerrors.ErrNotEnrolled
		}

		return nil, errors.Wrap(err, "failed to find enrollment")
	}

	return enrollment, nil
}

func mapCourseLookupError(err error) error {
	if errors.Is(err, repository.ErrCourseNotFound) {
		return domainerrors.ErrCourseNotFound
	}

	return errors.Wrap(err, "failed to find course")
}
