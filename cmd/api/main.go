package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"habitude/config"
	"habitude/internal/delivery"
	"habitude/internal/delivery/http"
	"habitude/internal/delivery/http/middleware"
	"habitude/internal/delivery/http/router/handler"
	"habitude/internal/domain/service"
	"habitude/internal/infra/auth"
	"habitude/internal/infra/auth/google"
	logs "habitude/internal/infra/log"
	"habitude/internal/infra/notification"
	"habitude/internal/infra/persistence/postgres"
	"habitude/internal/infra/pubsub"
	"habitude/internal/infra/qrcode"
	"habitude/internal/infra/ratelimit"
	"habitude/internal/usecase/impl"

	"go.uber.org/fx"
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewHabitRepository,
			postgres.NewFriendshipRepository,
			postgres.NewChallengeRepository,
			postgres.NewNotificationRepository,
			postgres.NewDeviceRepository,
			postgres.NewActivityRepository,
			postgres.NewAnalyticsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewTOTPService,
			google.NewAuthService,
			ratelimit.NewAttemptLimiter,
			newPushService,
			newQRCodeService,
		),
		pubsub.Module,
	)
}

// newPushService creates a Firebase push service with dependency injection
func newPushService(ctx context.Context, cfg *config.Config) (service.PushService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Push is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewHabitService,
			impl.NewSocialService,
			impl.NewNotificationService,
			impl.NewAnalyticsService,
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
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewHabitHandler,
			handler.NewSocialHandler,
			handler.NewNotificationHandler,
			handler.NewAnalyticsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
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
