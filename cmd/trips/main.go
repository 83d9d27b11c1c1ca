package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/piresc/nebengdinas/internal/pkg/approvaltoken"
	"github.com/piresc/nebengdinas/internal/pkg/circuitbreaker"
	"github.com/piresc/nebengdinas/internal/pkg/config"
	"github.com/piresc/nebengdinas/internal/pkg/database"
	"github.com/piresc/nebengdinas/internal/pkg/directory"
	"github.com/piresc/nebengdinas/internal/pkg/health"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	"github.com/piresc/nebengdinas/internal/pkg/middleware"
	"github.com/piresc/nebengdinas/internal/pkg/nats"
	nrpkg "github.com/piresc/nebengdinas/internal/pkg/newrelic"
	"github.com/piresc/nebengdinas/internal/pkg/notifier"
	"github.com/piresc/nebengdinas/internal/pkg/retry"
	"github.com/piresc/nebengdinas/internal/pkg/server"
	joinsgateway "github.com/piresc/nebengdinas/services/joins/gateway"
	joinshandler "github.com/piresc/nebengdinas/services/joins/handler"
	joinsrepo "github.com/piresc/nebengdinas/services/joins/repository"
	joinsusecase "github.com/piresc/nebengdinas/services/joins/usecase"
	"github.com/piresc/nebengdinas/services/optimization/engine"
	optgateway "github.com/piresc/nebengdinas/services/optimization/gateway"
	opthandler "github.com/piresc/nebengdinas/services/optimization/handler"
	optrepo "github.com/piresc/nebengdinas/services/optimization/repository"
	optusecase "github.com/piresc/nebengdinas/services/optimization/usecase"
	tripsgateway "github.com/piresc/nebengdinas/services/trips/gateway"
	tripshandler "github.com/piresc/nebengdinas/services/trips/handler"
	tripsrepo "github.com/piresc/nebengdinas/services/trips/repository"
	tripsusecase "github.com/piresc/nebengdinas/services/trips/usecase"
)

func main() {
	appName := "nebengdinas-trips"
	configPath := "config/trips.env"
	configs := config.InitConfig(configPath)

	// New Relic first so the logger can forward to it
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("timezone", configs.App.Location().String()),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Events are best effort; the service runs without NATS
	natsClient, err := nats.NewClient(configs.NATS.URL, appName)
	if err != nil {
		logger.Warn("NATS unavailable, events will not be published",
			logger.String("url", configs.NATS.URL), logger.Err(err))
	}

	components := server.NewShutdownManager(zapLogger)
	components.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	components.Register("redis", func(context.Context) error { return redisClient.Close() })
	if natsClient != nil {
		components.Register("nats", func(context.Context) error {
			natsClient.Close()
			return nil
		})
	}
	if nrApp != nil {
		components.Register("newrelic", func(context.Context) error {
			nrApp.Shutdown(10 * time.Second)
			return nil
		})
	}

	// Shared infrastructure
	db := postgresClient.GetDB()
	tx := database.NewTransactor(db)
	breakers := circuitbreaker.NewManager(circuitbreaker.DefaultConfig(), zapLogger)
	retrier := retry.NewWithDefaults(zapLogger)
	dir := directory.NewDirectory(db, redisClient, configs.Directory)
	tokens := approvaltoken.NewService(configs.ApprovalToken, redisClient)
	sender := notifier.NewSMTPSender(configs.SMTP, breakers)
	if !sender.IsConfigured() {
		logger.Warn("SMTP is not configured, notifications will only be logged")
	}
	dispatcher := notifier.NewDispatcher(sender, redisClient, configs.SMTP.Timeout)

	// Repositories
	tripRepo := tripsrepo.NewTripRepository(db)
	optimizationRepo := optrepo.NewOptimizationRepository(db)
	joinRepo := joinsrepo.NewJoinRepository(db)

	// Gateways
	tripGW := tripsgateway.NewTripGW(natsClient)
	optimizationGW := optgateway.NewOptimizationGW(natsClient)
	joinGW := joinsgateway.NewJoinGW(natsClient)
	suggester := optgateway.NewSuggester(context.Background(), configs.Suggestion, retrier, breakers, zapLogger)

	// Usecases
	tripUC := tripsusecase.NewTripUC(configs, tripRepo, tx, tokens, dir, dispatcher, tripGW)
	optimizationUC := optusecase.NewOptimizationUC(configs, optimizationRepo, tx,
		engine.New(configs.Optimization, configs.App.Location(), suggester), dispatcher, optimizationGW)
	joinUC := joinsusecase.NewJoinUC(configs, joinRepo, tripRepo, tx, tripUC, dir, dispatcher, joinGW, configs.App.Location())

	e := echo.New()

	// Panic recovery first, then tracing, request ids and access logs
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	if natsClient != nil {
		healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
	}
	healthService.WatchBreakers(breakers)
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	api := e.Group("/api/v1", middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		Redis:  redisClient,
		Prefix: "api",
		Limit:  120,
		Period: time.Minute,
	}))
	auth := middleware.JWTAuthMiddleware(configs.JWT)

	tripshandler.NewHandler(tripUC).RegisterRoutes(api, auth)
	opthandler.NewHandler(optimizationUC).RegisterRoutes(api, auth)
	joinshandler.NewHandler(joinUC).RegisterRoutes(api, auth)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewGracefulServer(e, zapLogger, configs.Server, components)
	if err := srv.Run(ctx); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
