package main

import (
	"context"
	"log/slog"
	"os"

	"walletpass/config"
	"walletpass/internal/delivery"
	"walletpass/internal/delivery/http"
	httpmiddleware "walletpass/internal/delivery/http/middleware"
	"walletpass/internal/delivery/http/router/handler"
	deliverymiddleware "walletpass/internal/delivery/middleware"
	"walletpass/internal/domain/repository"
	"walletpass/internal/domain/service"
	logs "walletpass/internal/infra/log"
	"walletpass/internal/infra/persistence/postgres"
	"walletpass/internal/infra/pubsub"
	"walletpass/internal/infra/push"
	"walletpass/internal/infra/signer"
	"walletpass/internal/usecase"
	"walletpass/internal/usecase/impl"

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
			postgres.NewPassRepository,
			postgres.NewDeviceRepository,
			postgres.NewRegistrationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			push.NewAPNsGateway,
			newPassGenerator,
		),
	)
}

// newPassGenerator creates the signing-service client from configuration
func newPassGenerator(cfg *config.Config, logger *slog.Logger) service.PassGenerator {
	return signer.NewHTTPGenerator(cfg.Signer.Endpoint, cfg.Signer.Timeout, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthGuard,
			impl.NewRegistrationService,
			newDispatchService,
			newPassService,
		),
	)
}

// newDispatchService creates the dispatcher with its pool and retry knobs
// taken from the APNs configuration section.
func newDispatchService(
	cfg *config.Config,
	deviceRepo repository.DeviceRepository,
	gateway service.PushGateway,
	logger *slog.Logger,
) usecase.DispatchUsecase {
	return impl.NewDispatchService(
		deviceRepo,
		gateway,
		cfg.APNs.Workers,
		cfg.APNs.RetryAttempts,
		cfg.APNs.RetryDelay,
		logger,
	)
}

// newPassService creates the pass use case with the configured default
// pass type identifier.
func newPassService(
	cfg *config.Config,
	passRepo repository.PassRepository,
	generator service.PassGenerator,
	dispatcher usecase.DispatchUsecase,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.PassUsecase {
	return impl.NewPassService(
		cfg.Wallet.PassTypeIdentifier,
		passRepo,
		generator,
		dispatcher,
		publisher,
		logger,
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			deliverymiddleware.NewRequestIDMiddleware,
			deliverymiddleware.NewLoggerMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRegistrationHandler,
			handler.NewPassHandler,
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
