package domain

import (
	"fmt"
	"time"
)

// ReminderKind classifies a planned reminder relative to its dose.
type ReminderKind string

const (
	KindBefore ReminderKind = "before"
	KindOnTime ReminderKind = "onTime"
	KindAfter  ReminderKind = "after"
	KindTest   ReminderKind = "test"
)

func (k ReminderKind) String() string {
	return string(k)
}

// ReminderEvent is a planned notification tied to a dose occurrence. Events are
// not persisted on their own; they live inside the day's NotificationLog.
type ReminderEvent struct {
	Kind           ReminderKind `json:"type"`
	MedicationID   string       `json:"medicineId,omitempty"`
	MedicationName string       `json:"medicineName,omitempty"`
	At             time.Time    `json:"time"`
	Title          string       `json:"title"`
	Message        string       `json:"message"`
}

// Key is the idempotency key for the event within a user's day. The event's
// wall-clock minute is part of the key so that two doses of the same medication
// on one day do not collide.
func (e ReminderEvent) Key(userID, dateKey string) string {
	medID := e.MedicationID
	if medID == "" {
		medID = "none"
	}
	return fmt.Sprintf("%s:%s:%s:%s:%s", userID, dateKey, medID, e.Kind, e.At.UTC().Format("15:04"))
}

// DateKey formats a time as the calendar-day key used throughout persistence.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func ParseDateKey(key string) (time.Time, error) {
	return time.Parse("2006-01-02", key)
}
