package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/medremind/reminder-engine/internal/observability/tracing"
)

// WebhookClient posts notifications to a delivery endpoint (a push gateway or
// a desktop-notifier bridge). Transient failures are retried with exponential
// backoff; a still-failing delivery is reported to the caller, who treats it
// as lost.
type WebhookClient struct {
	url        string
	httpClient *http.Client
	maxRetries int
}

func NewWebhookClient(url string, maxRetries int) *WebhookClient {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &WebhookClient{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxRetries: maxRetries,
	}
}

func (c *WebhookClient) Notify(ctx context.Context, n *Notification) error {
	ctx, span := tracing.StartNotifySpan(ctx, "webhook")
	defer span.End()

	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * 100 * time.Millisecond
			slog.DebugContext(ctx, "retrying notification delivery",
				slog.String("user_id", n.UserID),
				slog.Int("attempt", attempt+1),
				slog.Duration("backoff", backoff),
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		if err := c.post(ctx, body); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}

	return fmt.Errorf("notification delivery failed after %d attempts: %w", c.maxRetries, lastErr)
}

func (c *WebhookClient) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
}
