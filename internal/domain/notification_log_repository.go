package domain

import "context"

//go:generate mockgen -source=notification_log_repository.go -destination=notification_log_repository_mock.go -package=domain

// NotificationLogRepository persists planned reminders into the per-day log.
// UpsertAppend creates the log on first write and enforces the idempotency key:
// appending an event whose Key is already present is a no-op reported through
// the duplicate return value, never an error.
type NotificationLogRepository interface {
	UpsertAppend(ctx context.Context, userID, dateKey, dayName string, event ReminderEvent) (duplicate bool, err error)
	GetLog(ctx context.Context, userID, dateKey string) (*NotificationLog, error)
}
