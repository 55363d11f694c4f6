package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kenams/sport-challenge-roulette/internal/bootstrap"
	"github.com/kenams/sport-challenge-roulette/internal/config"
	"github.com/kenams/sport-challenge-roulette/internal/database"
	"github.com/kenams/sport-challenge-roulette/internal/database/postgres"
	"github.com/kenams/sport-challenge-roulette/internal/event"
	"github.com/kenams/sport-challenge-roulette/internal/eventlog"
	"github.com/kenams/sport-challenge-roulette/internal/metrics"
	"github.com/kenams/sport-challenge-roulette/internal/notify"
	"github.com/kenams/sport-challenge-roulette/internal/roulette"
	"github.com/kenams/sport-challenge-roulette/internal/scheduler"
	"github.com/kenams/sport-challenge-roulette/internal/server"
	"github.com/kenams/sport-challenge-roulette/internal/worker"
)

const (
	workerCount     = 1
	workerQueueSize = 4
	shutdownTimeout = 10 * time.Second
	cleanupInterval = 24 * time.Hour
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateEnv(); err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	dbPool, err := database.NewDefaultPool(cfg.GetDBConnString())
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Repositories
	playerRepo := postgres.NewPlayerRepository(dbPool)
	duelRepo := postgres.NewDuelRepository(dbPool)
	eventLogRepo := postgres.NewEventLogRepository(dbPool)

	// Event bus with the metrics collector subscribed
	bus := event.NewMemoryBus()
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		slog.Error("Failed to register metrics collector", "error", err)
		os.Exit(1)
	}

	// Notifications are optional; without a webhook the job still runs
	var dispatcher notify.Dispatcher = notify.Noop{}
	if cfg.WebhookURL != "" {
		dispatcher = notify.NewWebhookDispatcher(cfg.WebhookURL)
	}

	activityService := eventlog.NewService(eventLogRepo)

	rouletteService := roulette.NewService(playerRepo, duelRepo, dispatcher, activityService, bus, roulette.Config{
		MinLevel:     cfg.MinLevel,
		MinFairPlay:  cfg.MinFairPlay,
		StoreTimeout: cfg.StoreTimeout,
	})
	job := roulette.NewJob(rouletteService)

	switch cfg.RunMode {
	case config.RunModeLoop:
		runLoop(cfg, dbPool, playerRepo, duelRepo, activityService, job)
	default:
		runOnce(job)
	}
}

// runOnce executes a single job cycle and exits non-zero on failure,
// matching cron semantics.
func runOnce(job *roulette.Job) {
	if err := job.Process(context.Background()); err != nil {
		slog.Error("Job run failed", "error", err)
		os.Exit(1)
	}
}

// runLoop keeps the job on a schedule next to the ops API until a
// termination signal arrives.
func runLoop(cfg *config.Config, dbPool *pgxpool.Pool, players *postgres.PlayerRepository, duels *postgres.DuelRepository, activity eventlog.Service, job *roulette.Job) {
	pool := worker.NewPool(workerCount, workerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.SweepInterval, job)
	sched.Schedule(cleanupInterval, eventlog.NewCleanupJob(activity, cfg.AuditRetentionDays))

	// First cycle runs immediately rather than one interval from now
	pool.Enqueue(job)

	srv := server.NewServer(cfg.Port, cfg.APIKey, dbPool, duels, players)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: pool,
	})
}
