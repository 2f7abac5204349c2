package domain

// NotificationLog is the per-user, per-day append log of planned reminders.
// Created on the first event of the day, appended to thereafter, never deleted
// by this engine.
type NotificationLog struct {
	UserID        string          `json:"userId"`
	Date          string          `json:"date"`
	DayName       string          `json:"dayName"`
	Notifications []ReminderEvent `json:"notifications"`
}
