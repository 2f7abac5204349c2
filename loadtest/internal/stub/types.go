package stub

import "time"

// ReceivedNotification is one webhook delivery captured by the sink.
type ReceivedNotification struct {
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Kind       string    `json:"type"`
	ReceivedAt time.Time `json:"received_at"`
}

type NotificationsResponse struct {
	Notifications []ReceivedNotification `json:"notifications"`
	Count         int                    `json:"count"`
}

// SeedRequest describes synthetic regimens to load into the engine's store
// before a run.
type SeedRequest struct {
	Users []SeedUser `json:"users"`
}

type SeedUser struct {
	UserID          string   `json:"user_id"`
	MedicationCount int      `json:"medication_count"`
	DoseClocks      []string `json:"dose_clocks"`
	RemindBefore    string   `json:"remind_before,omitempty"`
	RemindAfter     string   `json:"remind_after,omitempty"`
}
