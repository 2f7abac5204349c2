//go:build gcloud

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/medremind/reminder-engine/internal/config"
	"github.com/medremind/reminder-engine/internal/infra/notifier"
	"github.com/medremind/reminder-engine/internal/observability"
)

func initChannel(ctx context.Context, cfg *config.Config) (notifier.Channel, func() error, error) {
	if err := cfg.Notifier.Validate(); err != nil {
		return nil, nil, err
	}

	cloudTasksChannel, err := notifier.NewCloudTasksChannel(ctx, notifier.CloudTasksConfig{
		ProjectID:  cfg.Notifier.GCloudProjectID,
		LocationID: cfg.Notifier.GCloudLocationID,
		QueueID:    cfg.Notifier.GCloudQueueID,
		TargetURL:  cfg.Notifier.GCloudTargetURL,
	})
	if err != nil {
		return nil, nil, err
	}

	slog.Info("notification channel initialized",
		slog.String("type", "cloud_tasks"),
		slog.String("project", cfg.Notifier.GCloudProjectID),
		slog.String("location", cfg.Notifier.GCloudLocationID),
		slog.String("queue", cfg.Notifier.GCloudQueueID),
	)

	cleanup := func() error {
		if err := cloudTasksChannel.Close(); err != nil {
			slog.Warn("failed to close cloud tasks channel", slog.String("error", err.Error()))

			return err
		}

		return nil
	}

	return cloudTasksChannel, cleanup, nil
}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = "reminder-engine"
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = "prod"
	}

	return observability.Init(ctx, observability.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		SamplingRate:   1.0,
		LogLevel:       cfg.LogLevel,
		ExportEnabled:  true,
	})
}
