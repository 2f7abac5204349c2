package scheduler

import "time"

type PlannedEventItem struct {
	Kind           string    `json:"type"`
	MedicationID   string    `json:"medicineId,omitempty"`
	MedicationName string    `json:"medicineName,omitempty"`
	At             time.Time `json:"time"`
	Duplicate      bool      `json:"duplicate"`
}

type RunResult struct {
	RunID           string             `json:"runId"`
	UserID          string             `json:"userId"`
	Date            string             `json:"date"`
	DayName         string             `json:"dayName"`
	MedicationCount int                `json:"medicationCount"`
	PlannedCount    int                `json:"plannedCount"`
	DuplicateCount  int                `json:"duplicateCount"`
	Events          []PlannedEventItem `json:"events"`
}
