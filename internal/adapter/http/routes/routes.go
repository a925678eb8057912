package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "pixgate/docs"
	"pixgate/internal/adapter/http/handlers"
	"pixgate/internal/adapter/http/middleware"
	"pixgate/internal/adapter/persistence/repository"
	"pixgate/internal/config"
	"pixgate/internal/domain/entities"
	"pixgate/internal/infrastructure/database"
	"pixgate/internal/infrastructure/events"
	"pixgate/internal/infrastructure/observability"
	"pixgate/internal/infrastructure/payments"
	"pixgate/internal/infrastructure/vehicle"
	"pixgate/internal/usecase"
	"pixgate/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// App is the wired service. Close releases broker and cache connections.
type App struct {
	Router   *gin.Engine
	Payments *usecase.PaymentUseCase
	closers  []func()
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// Run will start the server and block until SIGINT/SIGTERM.
func Run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := Build(ctx, cfg, logger)
	defer app.Close()

	// no write timeout: status streams stay open for minutes
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("[http] listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Build wires every dependency from cfg. Missing optional infrastructure
// (provider credentials, Redis, NATS) is logged and degraded, never fatal.
func Build(ctx context.Context, cfg config.Config, logger *zap.Logger) *App {
	app := &App{}
	metrics := observability.NewMetrics()

	providerOpts := payments.Options{
		Timeout:    cfg.ProviderTimeout,
		QRChartURL: cfg.QRChartURL,
		Metrics:    metrics,
		Logger:     logger,
	}
	providers := BuildProviders(cfg, providerOpts, logger)

	publisher := buildPublisher(cfg, logger, app)
	store := buildVehicleStore(ctx, cfg, logger, app)

	var vehicleAPI interfaces.IVehicleAPI
	api, vehicleAPIErr := vehicle.NewAPIClient(cfg.Vehicle, logger)
	if vehicleAPIErr != nil {
		logger.Warn("[vehicle] lookup api disabled", zap.Error(vehicleAPIErr))
	} else {
		vehicleAPI = api
	}

	paymentUseCase := usecase.NewPaymentUseCase(providers, cfg.DefaultProvider, publisher, logger)
	streamer := usecase.NewPaymentStreamer(paymentUseCase, cfg.Stream, publisher, metrics, logger)
	vehicleUseCase := usecase.NewVehicleUseCase(vehicleAPI, store, metrics, logger).WithAPIError(vehicleAPIErr)

	app.Payments = paymentUseCase
	app.Router = NewRouter(
		handlers.NewPaymentHandler(paymentUseCase, streamer, logger),
		handlers.NewVehicleHandler(vehicleUseCase, logger),
		metrics,
		logger,
	)

	logger.Info("[payment] providers ready",
		zap.Strings("providers", paymentUseCase.Providers()),
		zap.String("default", paymentUseCase.DefaultProvider()))
	return app
}

func NewRouter(paymentHandler *handlers.PaymentHandler, vehicleHandler *handlers.VehicleHandler, metrics *observability.Metrics, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	addPingRoutes(router)

	api := router.Group("/api")
	addPaymentRoutes(api, paymentHandler)
	addVehicleRoutes(api, vehicleHandler)
	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.ZapLogger(logger))
}

// BuildProviders constructs every provider that has credentials. Providers
// without them are left out, so requests naming them fail with a
// configuration error instead of reaching the network.
func BuildProviders(cfg config.Config, opts payments.Options, logger *zap.Logger) []interfaces.IPaymentProvider {
	var out []interfaces.IPaymentProvider
	register := func(name, secret string, build func() (interfaces.IPaymentProvider, error)) {
		p, err := build()
		if err != nil {
			logger.Warn("[payment][gateway] provider disabled", zap.String("provider", name), zap.Error(err))
			return
		}
		logger.Info("[payment][gateway] provider enabled", zap.String("provider", name), zap.String("secret", entities.MaskSecret(secret)))
		out = append(out, p)
	}

	register(config.ProviderGatewayA, cfg.GatewayA.SecretKey, func() (interfaces.IPaymentProvider, error) {
		return payments.NewGatewayA(cfg.GatewayA, opts)
	})
	register(config.ProviderGatewayB, cfg.GatewayB.SecretKey, func() (interfaces.IPaymentProvider, error) {
		return payments.NewGatewayB(cfg.GatewayB, opts)
	})
	register(config.ProviderGatewayC, cfg.GatewayC.SecretKey, func() (interfaces.IPaymentProvider, error) {
		return payments.NewGatewayC(cfg.GatewayC, opts)
	})
	register(config.ProviderMercadoPago, cfg.MercadoPagoAccessToken, func() (interfaces.IPaymentProvider, error) {
		return payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, opts)
	})
	return out
}

func buildPublisher(cfg config.Config, logger *zap.Logger, app *App) interfaces.IPaymentEventPublisher {
	if cfg.NatsURL == "" {
		return events.NoopPublisher{}
	}
	pub, err := events.NewNatsPublisher(cfg.NatsURL, logger)
	if err != nil {
		logger.Warn("[events] nats unavailable, events disabled", zap.Error(err))
		return events.NoopPublisher{}
	}
	app.closers = append(app.closers, func() { _ = pub.Close() })
	return pub
}

func buildVehicleStore(ctx context.Context, cfg config.Config, logger *zap.Logger, app *App) interfaces.IVehicleStore {
	if cfg.RedisURL != "" {
		client, err := vehicle.NewRedisClient(ctx, cfg.RedisURL)
		if err == nil {
			app.closers = append(app.closers, func() { _ = client.Close() })
			return vehicle.NewRedisStore(client, cfg.Vehicle.CacheTTL)
		}
		logger.Warn("[vehicle] redis unavailable, falling back", zap.Error(err))
	}
	if cfg.Vehicle.CacheTable != "" {
		ddb, err := database.NewDynamoDBClient(ctx, cfg.AWS)
		if err == nil {
			logger.Info("[vehicle] using dynamodb cache", zap.String("table", cfg.Vehicle.CacheTable))
			return repository.NewVehicleDynamoRepository(ddb, cfg.Vehicle.CacheTable, cfg.Vehicle.CacheTTL)
		}
		logger.Warn("[vehicle] dynamodb unavailable, using in-memory cache", zap.Error(err))
	}
	return vehicle.NewMemoryStore(cfg.Vehicle.CacheSize)
}
