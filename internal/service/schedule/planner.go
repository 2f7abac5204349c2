package schedule

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/medremind/reminder-engine/internal/domain"
)

// Planner turns one medication and one calendar day into the concrete reminder
// events for that day. Planning is pure: the reference instant is passed in,
// so the same (medication, day, now) triple always yields the same events.
// Deduplication against a second planning pass is the log store's job.
type Planner struct{}

func NewPlanner() *Planner {
	return &Planner{}
}

// Plan emits the before / on-time / missed-dose events for every dose of med
// on day, restricted to events strictly after now. Events already in the past,
// including past-due "before" reminders, are dropped rather than persisted as
// historical entries. The result is sorted by instant ascending.
func (p *Planner) Plan(med *domain.Medication, day, now time.Time) ([]domain.ReminderEvent, error) {
	if !med.ActiveOn(domain.WeekdayOf(day)) {
		return nil, nil
	}

	events := make([]domain.ReminderEvent, 0, len(med.DosageTimes)*3)

	for _, dose := range med.DosageTimes {
		onTime, err := ResolveClock(dose.Clock, day)
		if err != nil {
			return nil, fmt.Errorf("medication %s: %w", med.ID, err)
		}

		if before := ParseOffset(dose.RemindBefore); before > 0 {
			at := onTime.Add(-before)
			if at.After(now) {
				events = append(events, domain.ReminderEvent{
					Kind:           domain.KindBefore,
					MedicationID:   med.ID,
					MedicationName: med.Name,
					At:             at,
					Title:          "Medicine Reminder",
					Message:        fmt.Sprintf("Take %s in %s", med.Name, dose.RemindBefore),
				})
			}
		}

		if onTime.After(now) {
			events = append(events, domain.ReminderEvent{
				Kind:           domain.KindOnTime,
				MedicationID:   med.ID,
				MedicationName: med.Name,
				At:             onTime,
				Title:          "Time to Take Medicine",
				Message:        fmt.Sprintf("Take %s now", med.Name),
			})
		}

		if after := ParseOffset(dose.RemindAfter); after > 0 {
			at := onTime.Add(after)
			if at.After(now) {
				events = append(events, domain.ReminderEvent{
					Kind:           domain.KindAfter,
					MedicationID:   med.ID,
					MedicationName: med.Name,
					At:             at,
					Title:          "Missed Dose",
					Message:        fmt.Sprintf("Did you forget %s?", med.Name),
				})
			}
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].At.Before(events[j].At)
	})

	slog.Debug("planned reminder events",
		slog.String("medication_id", med.ID),
		slog.String("date", domain.DateKey(day)),
		slog.Int("event_count", len(events)),
	)

	return events, nil
}
