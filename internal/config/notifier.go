package config

import (
	"os"
	"strconv"
)

const (
	webhookURLEnv        = "NOTIFIER_WEBHOOK_URL"
	notifierMaxRetryEnv  = "NOTIFIER_MAX_RETRIES"
	defaultNotifierRetry = 3
)

type NotifierConfig struct {
	WebhookURL string
	MaxRetries int

	GCloudProjectID  string
	GCloudLocationID string
	GCloudQueueID    string
	GCloudTargetURL  string
}

func LoadNotifierConfig() *NotifierConfig {
	maxRetries := defaultNotifierRetry
	if v := os.Getenv(notifierMaxRetryEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxRetries = parsed
		}
	}

	return &NotifierConfig{
		WebhookURL: os.Getenv(webhookURLEnv),
		MaxRetries: maxRetries,

		GCloudProjectID:  os.Getenv("GCLOUD_PROJECT_ID"),
		GCloudLocationID: os.Getenv("GCLOUD_LOCATION_ID"),
		GCloudQueueID:    os.Getenv("GCLOUD_QUEUE_ID"),
		GCloudTargetURL:  os.Getenv("GCLOUD_TARGET_URL"),
	}
}
