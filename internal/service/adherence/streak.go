package adherence

import (
	"sort"
	"time"

	"github.com/medremind/reminder-engine/internal/domain"
)

// adherenceThreshold is the per-day taken/total rate at or above which a day
// still counts toward the streak.
const adherenceThreshold = 0.80

const day = 24 * time.Hour

// StreakDays returns the current consecutive-day adherence streak ending at or
// before today. A streak day is one where at least 80% of logged doses were
// taken. Walking backwards from the most recent logged day:
//   - future-dated records are skipped, not treated as errors
//   - a calendar gap between logged days ends the streak at the last
//     contiguous day found
//   - a sub-threshold day ends the streak, and resets it to zero when that
//     day is today
func StreakDays(records []domain.AdherenceRecord, today time.Time) int {
	if len(records) == 0 {
		return 0
	}

	daily := groupByDay(records)

	dates := make([]string, 0, len(daily))
	for key := range daily {
		dates = append(dates, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	todayStart := today.UTC().Truncate(day)

	streak := 0
	for i, key := range dates {
		date, err := domain.ParseDateKey(key)
		if err != nil {
			continue
		}

		daysDiff := int(todayStart.Sub(date) / day)
		if daysDiff < 0 {
			continue
		}

		// A later iteration landing beyond the accumulated streak means a
		// day with no records sits in between.
		if i > 0 && daysDiff > streak {
			break
		}

		if daily[key].rate() >= adherenceThreshold {
			streak = daysDiff + 1
			continue
		}

		if daysDiff == 0 {
			streak = 0
		}
		break
	}

	return streak
}
