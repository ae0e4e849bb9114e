package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	nrecho "github.com/newrelic/go-agent/v3/integrations/nrecho-v4"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/config"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/database"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/health"
	httpclient "github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/http"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/logger"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/middleware"
	nrpkg "github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/newrelic"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/nsq"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/retry"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/server"

	authhandler "github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/auth/handler/http"
	authrepo "github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/auth/repository"
	authusecase "github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/auth/usecase"
	bookinggw "github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/booking/gateway"
	bookinghandler "github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/booking/handler/http"
	bookingrepo "github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/booking/repository"
	bookingusecase "github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/booking/usecase"
	invoicegw "github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/invoice/gateway"
	invoicehandler "github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/invoice/handler/http"
	invoicensq "github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/invoice/handler/nsq"
	invoicerepo "github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/invoice/repository"
	invoiceusecase "github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/invoice/usecase"
)

func main() {
	appName := "silver-taxi-dashboard"
	configPath := "config/dashboard.env"
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	producer, err := nsq.NewProducer(configs.NSQ.ProducerAddr)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}

	db := postgresClient.GetDB()

	// booking service
	routingClient := httpclient.NewClient(
		configs.Routing.BaseURL,
		configs.Routing.APIKey,
		time.Duration(configs.Routing.TimeoutSec)*time.Second,
	)
	routingGW := bookinggw.NewRoutingGateway(routingClient, retry.NewWithDefaults(zapLogger))
	routeProvider := bookingrepo.NewCachedRouteProvider(routingGW, redisClient, configs.Routing.CacheTTLMin)

	bookingRepository := bookingrepo.NewBookingRepository(configs, db)
	referenceRepository := bookingrepo.NewReferenceRepository(db, redisClient)
	bookingGateway := bookinggw.NewBookingGW(producer)
	bookingUC := bookingusecase.NewBookingUC(configs, bookingRepository, referenceRepository, routeProvider, bookingGateway)
	bookingHandler := bookinghandler.NewBookingHandler(bookingUC)

	// invoice service
	invoiceRepository := invoicerepo.NewInvoiceRepository(db)
	invoiceGateway := invoicegw.NewInvoiceGW(producer)
	invoiceUC := invoiceusecase.NewInvoiceUC(invoiceRepository, bookingRepository, invoiceGateway)
	invoiceHandler := invoicehandler.NewInvoiceHandler(invoiceUC)

	completionConsumer, err := invoicensq.NewCompletionConsumer(invoiceUC)
	if err != nil {
		zapLogger.Fatal("Failed to create invoice consumer", logger.Err(err))
	}
	if err := completionConsumer.Start(configs.NSQ.LookupdAddrs); err != nil {
		zapLogger.Fatal("Failed to start invoice consumer", logger.Err(err))
	}

	// auth service
	userRepository := authrepo.NewUserRepository(db)
	authUC := authusecase.NewAuthUC(configs, userRepository)
	authHandler := authhandler.NewAuthHandler(authUC)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)

	authHandler.RegisterRoutes(e, configs, redisClient)
	bookingHandler.RegisterRoutes(e, configs)
	invoiceHandler.RegisterRoutes(e, configs)

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		completionConsumer.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		producer.Stop()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		if nrApp != nil {
			nrApp.Shutdown(10 * time.Second)
		}
		return nil
	})

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, configs.Server.ShutdownTimeout)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_ = shutdownManager.Shutdown(ctx)

	logger.Info("Server exiting gracefully")
}
