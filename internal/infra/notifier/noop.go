package notifier

import (
	"context"
	"log/slog"
)

// NoopChannel logs the notification and drops it. Used when no delivery
// endpoint is configured.
type NoopChannel struct{}

func NewNoopChannel() *NoopChannel {
	return &NoopChannel{}
}

func (n *NoopChannel) Notify(ctx context.Context, msg *Notification) error {
	slog.InfoContext(ctx, "notification dropped (no channel configured)",
		slog.String("user_id", msg.UserID),
		slog.String("title", msg.Title),
		slog.String("kind", msg.Kind.String()),
	)
	return nil
}
