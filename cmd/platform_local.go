//go:build !gcloud

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/medremind/reminder-engine/internal/config"
	"github.com/medremind/reminder-engine/internal/infra/notifier"
	"github.com/medremind/reminder-engine/internal/observability"
)

func initChannel(_ context.Context, cfg *config.Config) (notifier.Channel, func() error, error) {
	if cfg.Notifier.WebhookURL == "" {
		slog.Warn("NOTIFIER_WEBHOOK_URL not set, notifications are logged and dropped")
		return notifier.NewNoopChannel(), nil, nil
	}

	slog.Info("notification channel initialized",
		slog.String("type", "webhook"),
		slog.String("url", cfg.Notifier.WebhookURL),
	)

	return notifier.NewWebhookClient(cfg.Notifier.WebhookURL, cfg.Notifier.MaxRetries), nil, nil
}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "reminder-engine"
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = "dev"
	}

	return observability.Init(ctx, observability.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		SamplingRate:   1.0,
		LogLevel:       cfg.LogLevel,
		ExportEnabled:  os.Getenv("OTEL_EXPORT_ENABLED") == "true",
	})
}
