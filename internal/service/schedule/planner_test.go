package schedule

import (
	"testing"
	"time"

	"github.com/medremind/reminder-engine/internal/domain"
)

func testMedication(doses ...domain.DosageTime) *domain.Medication {
	return &domain.Medication{
		ID:          "med-1",
		UserID:      "user-1",
		Name:        "Aspirin",
		DosageTimes: doses,
		ActiveDays: []domain.Weekday{
			domain.Sunday, domain.Monday, domain.Tuesday, domain.Wednesday,
			domain.Thursday, domain.Friday, domain.Saturday,
		},
	}
}

func TestPlanner_Plan_AllThreeEvents(t *testing.T) {
	planner := NewPlanner()

	// 2025-03-10 is a Monday.
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)

	med := testMedication(domain.DosageTime{
		Clock:        "09:00",
		RemindBefore: "15m",
		RemindAfter:  "30m",
	})

	events, err := planner.Plan(med, day, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	wantTimes := []time.Time{
		time.Date(2025, time.March, 10, 8, 45, 0, 0, time.UTC),
		time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC),
	}
	wantKinds := []domain.ReminderKind{domain.KindBefore, domain.KindOnTime, domain.KindAfter}

	for i, ev := range events {
		if !ev.At.Equal(wantTimes[i]) {
			t.Errorf("event[%d].At = %v, want %v", i, ev.At, wantTimes[i])
		}
		if ev.Kind != wantKinds[i] {
			t.Errorf("event[%d].Kind = %s, want %s", i, ev.Kind, wantKinds[i])
		}
		if ev.MedicationID != "med-1" || ev.MedicationName != "Aspirin" {
			t.Errorf("event[%d] medication = %s/%s", i, ev.MedicationID, ev.MedicationName)
		}
	}

	if events[0].Message != "Take Aspirin in 15m" {
		t.Errorf("before message = %q", events[0].Message)
	}
	if events[1].Message != "Take Aspirin now" {
		t.Errorf("on-time message = %q", events[1].Message)
	}
	if events[2].Message != "Did you forget Aspirin?" {
		t.Errorf("after message = %q", events[2].Message)
	}
}

func TestPlanner_Plan_PastEventsDropped(t *testing.T) {
	planner := NewPlanner()

	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	// Past the dose time: only the missed-dose reminder remains.
	now := time.Date(2025, time.March, 10, 9, 10, 0, 0, time.UTC)

	med := testMedication(domain.DosageTime{
		Clock:        "09:00",
		RemindBefore: "15m",
		RemindAfter:  "30m",
	})

	events, err := planner.Plan(med, day, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Kind != domain.KindAfter {
		t.Errorf("kind = %s, want %s", events[0].Kind, domain.KindAfter)
	}
	want := time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)
	if !events[0].At.Equal(want) {
		t.Errorf("At = %v, want %v", events[0].At, want)
	}
}

func TestPlanner_Plan_InactiveWeekday(t *testing.T) {
	planner := NewPlanner()

	med := testMedication(domain.DosageTime{Clock: "09:00"})
	med.ActiveDays = []domain.Weekday{domain.Tuesday}

	// A Monday.
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	now := day

	events, err := planner.Plan(med, day, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events for inactive weekday, want 0", len(events))
	}
}

func TestPlanner_Plan_ZeroOffsetsSuppressNeighbors(t *testing.T) {
	planner := NewPlanner()

	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	now := day

	med := testMedication(domain.DosageTime{Clock: "09:00"})

	events, err := planner.Plan(med, day, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want only the on-time event", len(events))
	}
	if events[0].Kind != domain.KindOnTime {
		t.Errorf("kind = %s, want %s", events[0].Kind, domain.KindOnTime)
	}
}

func TestPlanner_Plan_MultipleDosesSortedAcrossDoses(t *testing.T) {
	planner := NewPlanner()

	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	now := day

	med := testMedication(
		domain.DosageTime{Clock: "21:00", RemindBefore: "30m"},
		domain.DosageTime{Clock: "08:00", RemindAfter: "1h"},
	)

	events, err := planner.Plan(med, day, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].At.Before(events[i-1].At) {
			t.Errorf("events out of order at %d: %v before %v", i, events[i].At, events[i-1].At)
		}
	}
}

func TestPlanner_Plan_OrderingInvariantPerDose(t *testing.T) {
	planner := NewPlanner()

	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	now := day

	med := testMedication(domain.DosageTime{
		Clock:        "12:00",
		RemindBefore: "2h",
		RemindAfter:  "45m",
	})

	events, err := planner.Plan(med, day, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	if !events[0].At.Before(events[1].At) || !events[1].At.Before(events[2].At) {
		t.Errorf("before/onTime/after not strictly increasing: %v %v %v",
			events[0].At, events[1].At, events[2].At)
	}
}

func TestPlanner_Plan_InvalidClockErrors(t *testing.T) {
	planner := NewPlanner()

	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	med := testMedication(domain.DosageTime{Clock: "25:00"})

	if _, err := planner.Plan(med, day, day); err == nil {
		t.Fatal("expected error for out-of-range hour")
	}
}
