package domain

import (
	"context"
	"time"
)

// DeliveryRecord is one audit row per fired reminder. Delivery itself is
// best-effort and unacknowledged; the record captures what this process
// attempted and when.
type DeliveryRecord struct {
	RunID          string
	UserID         string
	MedicationID   string
	Kind           ReminderKind
	ScheduledAt    time.Time
	DeliveredAt    time.Time
	DeliveryFailed bool
}

type DeliveryRecorder interface {
	RecordDelivery(ctx context.Context, record DeliveryRecord) error
	Close() error
}
