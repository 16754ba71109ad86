package main

import (
	"context"
	"log/slog"
	"os"

	"booksy/config"
	"booksy/internal/delivery"
	"booksy/internal/delivery/api"
	"booksy/internal/delivery/api/middleware"
	"booksy/internal/delivery/api/router/handler"
	"booksy/internal/domain/service"
	"booksy/internal/infra/auth"
	"booksy/internal/infra/cache"
	"booksy/internal/infra/email"
	"booksy/internal/infra/errreport"
	logs "booksy/internal/infra/log"
	"booksy/internal/infra/metrics"
	"booksy/internal/infra/persistence/postgres"
	"booksy/internal/infra/pubsub"
	"booksy/internal/infra/qrcode"
	"booksy/internal/infra/tracing"
	"booksy/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			migrate,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.New,
		newMetrics,
		tracing.New,
	)
}

// newMetrics exposes the Prometheus registry through the domain interface.
func newMetrics(registry *metrics.Registry) service.Metrics {
	return registry
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewCourseRepository,
			postgres.NewUserRepository,
			postgres.NewEnrollmentRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			cache.NewCatalogCache,
			email.New,
			errreport.New,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewCatalogService,
			impl.NewEnrollmentService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewAuthHandler,
			handler.NewCourseHandler,
			handler.NewEnrollmentHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// migrate brings the schema up to date before the server accepts traffic.
func migrate(cfg *config.Config, db *gorm.DB, logger *slog.Logger) error {
	if !cfg.Database.AutoMigrate {
		return nil
	}

	logger.Info("Running database migrations")

	return postgres.AutoMigrate(db)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
