package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"go.temporal.io/sdk/worker"

	"github.com/ghuser/examseats/pkg/app"
	"github.com/ghuser/examseats/pkg/cache"
	"github.com/ghuser/examseats/pkg/config"
	"github.com/ghuser/examseats/pkg/database"
	"github.com/ghuser/examseats/pkg/events"
	"github.com/ghuser/examseats/pkg/logger"
	"github.com/ghuser/examseats/pkg/telemetry"
	pkgworkflows "github.com/ghuser/examseats/pkg/workflows"
	appsvcs "github.com/ghuser/examseats/services/classroom/application/services"
	"github.com/ghuser/examseats/services/classroom/application/subscribers"
	"github.com/ghuser/examseats/services/classroom/application/workflows"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg).With("process", "worker")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close() //nolint:errcheck
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	if cfg.TemporalEnabled {
		temporalClient, err := pkgworkflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, cfg.TemporalTaskQueue, log)
		if err != nil {
			log.Error("failed to initialize temporal client", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer temporalClient.Close()
		appConfig.TemporalClient = temporalClient

		w := newExamPlanWorker(appConfig)
		if err := w.Start(); err != nil {
			log.Error("failed to start temporal worker", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer w.Stop()
		log.Info("temporal worker started", "task_queue", temporalClient.TaskQueue)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancel()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires the classroom cache handlers to their topics and
// drains each subscription's error channel.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	sync := subscribers.NewCacheSync(cache.NewClassroomCache(a.Redis), a.Logger)

	topics := make([]string, 0, 2)
	for topic, handler := range sync.Handlers() {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		go drain(ctx, a, topic, errCh)
		topics = append(topics, topic)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

func drain(ctx context.Context, a *app.Application, topic string, errCh <-chan error) {
	for err := range errCh {
		a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
		telemetry.CaptureError(ctx, err, map[string]string{"topic": topic})
	}
}

// newExamPlanWorker hosts the exam plan workflow and its activities. The
// activities allocate through the same service the API uses.
func newExamPlanWorker(a *app.Application) worker.Worker {
	svcs := appsvcs.New(a)
	return a.TemporalClient.NewWorker(func(reg worker.Registry) {
		reg.RegisterWorkflow(workflows.ExamPlanWorkflow)
		reg.RegisterActivity(&workflows.Activities{Allocator: svcs.Classroom})
	})
}
