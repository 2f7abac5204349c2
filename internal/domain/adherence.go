package domain

import "time"

// AdherenceStatus is the logged outcome of one dose occurrence.
type AdherenceStatus string

const (
	StatusTaken   AdherenceStatus = "taken"
	StatusMissed  AdherenceStatus = "missed"
	StatusDelayed AdherenceStatus = "delayed"
)

func (s AdherenceStatus) IsValid() bool {
	switch s {
	case StatusTaken, StatusMissed, StatusDelayed:
		return true
	}
	return false
}

// AdherenceRecord is append-only: dose-logging flows create records, this
// engine only reads them back for analytics.
type AdherenceRecord struct {
	Date   time.Time       `json:"date"`
	Status AdherenceStatus `json:"status"`
}

// AdherenceSnapshot is computed on demand over a trailing window and never
// persisted.
type AdherenceSnapshot struct {
	TotalDays               int `json:"totalDays"`
	PerfectDays             int `json:"perfectDays"`
	AverageAdherencePercent int `json:"averageAdherencePercent"`
	TotalDoses              int `json:"totalDoses"`
	TakenDoses              int `json:"takenDoses"`
	MissedDoses             int `json:"missedDoses"`
}
