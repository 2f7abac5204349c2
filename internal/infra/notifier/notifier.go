package notifier

import (
	"context"
	"time"

	"github.com/medremind/reminder-engine/internal/domain"
)

//go:generate mockgen -source=notifier.go -destination=mock.go -package=notifier

// Notification is the one-way message handed to the delivery channel.
// DedupKey and ScheduledAt are channel hints, not payload: queue-backed
// channels use them to name the task and to defer delivery.
type Notification struct {
	UserID      string              `json:"user_id"`
	Title       string              `json:"title"`
	Message     string              `json:"message"`
	Kind        domain.ReminderKind `json:"type"`
	DedupKey    string              `json:"-"`
	ScheduledAt time.Time           `json:"-"`
}

// Channel delivers a reminder to the user. Delivery is best-effort with no
// acknowledgment path: callers log errors and move on, they never block a
// scheduler run on the outcome.
type Channel interface {
	Notify(ctx context.Context, n *Notification) error
}
