package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/nebengdinas/internal/pkg/approvaltoken"
	"github.com/piresc/nebengdinas/internal/pkg/circuitbreaker"
	"github.com/piresc/nebengdinas/internal/pkg/config"
	"github.com/piresc/nebengdinas/internal/pkg/database"
	"github.com/piresc/nebengdinas/internal/pkg/directory"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/internal/pkg/nats"
	nrpkg "github.com/piresc/nebengdinas/internal/pkg/newrelic"
	"github.com/piresc/nebengdinas/internal/pkg/notifier"
	"github.com/piresc/nebengdinas/internal/pkg/retry"
	joinsgateway "github.com/piresc/nebengdinas/services/joins/gateway"
	joinsrepo "github.com/piresc/nebengdinas/services/joins/repository"
	joinsusecase "github.com/piresc/nebengdinas/services/joins/usecase"
	"github.com/piresc/nebengdinas/services/optimization/engine"
	optgateway "github.com/piresc/nebengdinas/services/optimization/gateway"
	optrepo "github.com/piresc/nebengdinas/services/optimization/repository"
	optusecase "github.com/piresc/nebengdinas/services/optimization/usecase"
	tripsgateway "github.com/piresc/nebengdinas/services/trips/gateway"
	tripsrepo "github.com/piresc/nebengdinas/services/trips/repository"
	tripsusecase "github.com/piresc/nebengdinas/services/trips/usecase"
	"github.com/spf13/cobra"
)

const appName = "nebengdinas-tripctl"

var configPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tripctl",
		Short:         "Maintenance jobs for the business trip service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config/trips.env", "env file loaded when APP_ENV=local")

	root.AddCommand(
		newSweepCmd(),
		newNotifyRetryCmd(),
		newPurgeJoinsCmd(),
		newProposeCmd(),
	)
	return root
}

// app holds the dependencies one job run needs
type app struct {
	configs    *models.Config
	zapLogger  *logger.ZapLogger
	nrApp      *newrelic.Application
	postgres   *database.PostgresClient
	redis      *database.RedisClient
	nats       *nats.Client
	breakers   *circuitbreaker.Manager
	retrier    *retry.Retrier
	dispatcher *notifier.Dispatcher
	tripUC     *tripsusecase.TripUC
	optUC      *optusecase.OptimizationUC
	joinUC     *joinsusecase.JoinUC
}

func bootstrap() (*app, error) {
	configs := config.InitConfig(configPath)
	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logger.SetGlobalLogger(zapLogger)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		return nil, err
	}
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		postgresClient.Close()
		return nil, err
	}
	natsClient, err := nats.NewClient(configs.NATS.URL, appName)
	if err != nil {
		logger.Warn("NATS unavailable, events will not be published", logger.Err(err))
	}

	a := &app{
		configs:   configs,
		zapLogger: zapLogger,
		nrApp:     nrApp,
		postgres:  postgresClient,
		redis:     redisClient,
		nats:      natsClient,
		breakers:  circuitbreaker.NewManager(circuitbreaker.DefaultConfig(), zapLogger),
		retrier:   retry.NewWithDefaults(zapLogger),
	}

	db := postgresClient.GetDB()
	tx := database.NewTransactor(db)
	dir := directory.NewDirectory(db, redisClient, configs.Directory)
	a.dispatcher = notifier.NewDispatcher(notifier.NewSMTPSender(configs.SMTP, a.breakers), redisClient, configs.SMTP.Timeout)

	tripRepo := tripsrepo.NewTripRepository(db)
	a.tripUC = tripsusecase.NewTripUC(configs, tripRepo, tx,
		approvaltoken.NewService(configs.ApprovalToken, redisClient), dir, a.dispatcher,
		tripsgateway.NewTripGW(natsClient))
	a.optUC = optusecase.NewOptimizationUC(configs, optrepo.NewOptimizationRepository(db), tx,
		engine.New(configs.Optimization, configs.App.Location(),
			optgateway.NewSuggester(context.Background(), configs.Suggestion, a.retrier, a.breakers, zapLogger)), a.dispatcher,
		optgateway.NewOptimizationGW(natsClient))
	a.joinUC = joinsusecase.NewJoinUC(configs, joinsrepo.NewJoinRepository(db), tripRepo, tx,
		a.tripUC, dir, a.dispatcher, joinsgateway.NewJoinGW(natsClient), configs.App.Location())

	return a, nil
}

// run wraps job in a New Relic background transaction and closes every
// connection afterwards
func (a *app) run(ctx context.Context, name string, job func(ctx context.Context) error) error {
	ctx, end := nrpkg.StartBackgroundTransaction(ctx, a.nrApp, name)
	err := job(ctx)
	end()
	a.close()
	return err
}

func (a *app) close() {
	if a.nats != nil {
		a.nats.Close()
	}
	if err := a.redis.Close(); err != nil {
		logger.Warn("Error closing Redis connection", logger.Err(err))
	}
	if err := a.postgres.Close(); err != nil {
		logger.Warn("Error closing PostgreSQL connection", logger.Err(err))
	}
	_ = a.zapLogger.Sync()
	a.zapLogger.Close()
	if a.nrApp != nil {
		a.nrApp.Shutdown(defaultNRShutdown)
	}
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
