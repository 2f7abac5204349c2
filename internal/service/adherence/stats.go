package adherence

import (
	"math"
	"time"

	"github.com/medremind/reminder-engine/internal/domain"
)

// Stats aggregates dose outcomes over the trailing window [now-windowDays, now]
// inclusive. A window with no doses yields the zero snapshot; the average is
// never a division by zero.
func Stats(records []domain.AdherenceRecord, windowDays int, now time.Time) domain.AdherenceSnapshot {
	start := now.AddDate(0, 0, -windowDays)

	daily := make(map[string]*dayCount)
	totalDoses := 0
	takenDoses := 0

	for _, r := range records {
		if r.Date.Before(start) || r.Date.After(now) {
			continue
		}

		key := domain.DateKey(r.Date)
		c, ok := daily[key]
		if !ok {
			c = &dayCount{}
			daily[key] = c
		}

		c.total++
		totalDoses++
		if r.Status == domain.StatusTaken {
			c.taken++
			takenDoses++
		}
	}

	perfectDays := 0
	for _, c := range daily {
		if c.perfect() {
			perfectDays++
		}
	}

	average := 0
	if totalDoses > 0 {
		average = int(math.Round(float64(takenDoses) / float64(totalDoses) * 100))
	}

	return domain.AdherenceSnapshot{
		TotalDays:               len(daily),
		PerfectDays:             perfectDays,
		AverageAdherencePercent: average,
		TotalDoses:              totalDoses,
		TakenDoses:              takenDoses,
		MissedDoses:             totalDoses - takenDoses,
	}
}
