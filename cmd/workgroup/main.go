package main

import (
	"context"
	"log/slog"
	"os"

	"workgroup/config"
	"workgroup/internal/delivery"
	"workgroup/internal/delivery/api"
	"workgroup/internal/delivery/api/middleware"
	"workgroup/internal/delivery/api/router/handler"
	"workgroup/internal/domain/service"
	"workgroup/internal/errors"
	"workgroup/internal/infra/auth"
	logs "workgroup/internal/infra/log"
	"workgroup/internal/infra/metrics"
	"workgroup/internal/infra/persistence/postgres"
	"workgroup/internal/infra/pubsub"
	"workgroup/internal/infra/qrcode"
	"workgroup/internal/infra/realtime"
	"workgroup/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
			registerDBStats,
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewWorkingGroupRepository,
			postgres.NewUserRepository,
			postgres.NewMembershipRepository,
			postgres.NewDeviceRepository,
			postgres.NewScheduleRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.New,
			realtime.New,
			// The hub is both the connection registry and the broadcaster used by use cases.
			func(hub *realtime.Hub) service.Broadcaster { return hub },
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewGroupService,
			impl.NewDeviceService,
			impl.NewScheduleService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewIngestionRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewGroupHandler,
			handler.NewDeviceHandler,
			handler.NewNotificationHandler,
			handler.NewScheduleHandler,
			handler.NewWSHandler,
			handler.NewHealthHandler,
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

func registerDBStats(cfg *config.Config, m *metrics.Metrics, db *gorm.DB) error {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return nil
	}

	return errors.Wrap(m.RegisterDBStats(db), "register db stats")
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
