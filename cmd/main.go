package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/medremind/reminder-engine/internal/config"
	"github.com/medremind/reminder-engine/internal/handler"
	"github.com/medremind/reminder-engine/internal/health"
	"github.com/medremind/reminder-engine/internal/infra/deliveryrecorder"
	"github.com/medremind/reminder-engine/internal/infra/repository"
	"github.com/medremind/reminder-engine/internal/observability/metrics"
	"github.com/medremind/reminder-engine/internal/observability/middleware"
	"github.com/medremind/reminder-engine/internal/service/adherence"
	"github.com/medremind/reminder-engine/internal/service/scheduler"
	"github.com/medremind/reminder-engine/internal/trigger"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	schedulerMetrics, err := metrics.NewSchedulerMetrics()
	if err != nil {
		slog.Error("failed to initialize scheduler metrics", slog.String("error", err.Error()))
		return 1
	}

	analyticsMetrics, err := metrics.NewAnalyticsMetrics()
	if err != nil {
		slog.Error("failed to initialize analytics metrics", slog.String("error", err.Error()))
		return 1
	}

	// Delivery audit recorder (InfluxDB for local, BigQuery for gcloud)
	recorderCfg := deliveryrecorder.LoadConfig()
	recorder, err := deliveryrecorder.NewRecorder(ctx, recorderCfg)
	if err != nil {
		slog.Error("failed to initialize delivery recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			slog.Warn("failed to close delivery recorder", slog.String("error", err.Error()))
		}
	}()

	channel, channelCleanup, err := initChannel(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize notification channel", slog.String("error", err.Error()))
		return 1
	}
	if channelCleanup != nil {
		defer func() {
			if err := channelCleanup(); err != nil {
				slog.Error("notification channel cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	redisOpts := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if cfg.Redis.TLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOpts)

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	medRepo := repository.NewMedicationRepository(redisClient)
	logRepo := repository.NewNotificationLogRepository(redisClient)

	dispatcher := scheduler.NewDispatcher()
	defer dispatcher.Stop()

	schedulerService := scheduler.NewService(medRepo, logRepo, channel, recorder, dispatcher, schedulerMetrics)
	adherenceService := adherence.NewService(medRepo, analyticsMetrics)

	schedulerHandler := handler.NewSchedulerHandler(schedulerService)
	adherenceHandler := handler.NewAdherenceHandler(adherenceService)
	logHandler := handler.NewNotificationLogHandler(logRepo)

	if cfg.Trigger.Enabled {
		cronTrigger := trigger.NewCronTrigger(medRepo, schedulerService, cfg.Trigger.CronSpec)
		if err := cronTrigger.Start(ctx); err != nil {
			slog.Error("failed to start scheduler cron", slog.String("error", err.Error()))
			return 1
		}
		defer cronTrigger.Stop()
	} else {
		slog.Info("scheduler cron disabled")
	}

	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(redisClient, dispatcher, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	v1 := r.Group("/api/v1")
	{
		v1.POST("/scheduler/run", schedulerHandler.HandleSchedulerRun)
		v1.POST("/scheduler/cancel", schedulerHandler.HandleCancelDay)
		v1.GET("/users/:user_id/streak", adherenceHandler.HandleStreak)
		v1.GET("/users/:user_id/adherence/stats", adherenceHandler.HandleStats)
		v1.GET("/users/:user_id/notifications/:date", logHandler.HandleGetLog)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Bool("cron_enabled", cfg.Trigger.Enabled),
			slog.String("cron_spec", cfg.Trigger.CronSpec),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
