package repository

import (
	"context"
	"testing"
	"time"

	"github.com/medremind/reminder-engine/internal/domain"
	"github.com/medremind/reminder-engine/internal/testutil"
)

func TestMedicationRepositorySaveAndFindByUser(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewMedicationRepository(client)

	med := testutil.Medication("user-001", "med-001", "Amoxicillin", "08:00")
	med.Description = "with food"
	med.AdherenceHistory = []domain.AdherenceRecord{
		{Date: time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC), Status: domain.StatusTaken},
	}

	if err := repo.Save(ctx, med); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	meds, err := repo.FindByUser(ctx, "user-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meds) != 1 {
		t.Fatalf("expected 1 medication, got %d", len(meds))
	}

	got := meds[0]
	if got.ID != med.ID {
		t.Errorf("expected ID %s, got %s", med.ID, got.ID)
	}
	if got.Name != med.Name {
		t.Errorf("expected Name %s, got %s", med.Name, got.Name)
	}
	if got.Description != med.Description {
		t.Errorf("expected Description %s, got %s", med.Description, got.Description)
	}
	if len(got.DosageTimes) != 1 || got.DosageTimes[0].Clock != "08:00" {
		t.Errorf("unexpected dosage times: %+v", got.DosageTimes)
	}
	if got.DosageTimes[0].RemindBefore != "15m" || got.DosageTimes[0].RemindAfter != "30m" {
		t.Errorf("unexpected offsets: %+v", got.DosageTimes[0])
	}
	if len(got.ActiveDays) != 7 {
		t.Errorf("expected 7 active days, got %d", len(got.ActiveDays))
	}
	if len(got.AdherenceHistory) != 1 || got.AdherenceHistory[0].Status != domain.StatusTaken {
		t.Errorf("unexpected adherence history: %+v", got.AdherenceHistory)
	}
	if !got.CreatedAt.Equal(med.CreatedAt) {
		t.Errorf("expected CreatedAt %v, got %v", med.CreatedAt, got.CreatedAt)
	}
}

func TestMedicationRepositorySaveError(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewMedicationRepository(client)

	invalidClock := testutil.Medication("user-001", "med-bad", "Ibuprofen", "8:00")
	invalidOffset := testutil.Medication("user-001", "med-bad", "Ibuprofen", "08:00")
	invalidOffset.DosageTimes[0].RemindBefore = "-15m"

	tests := []struct {
		name string
		med  *domain.Medication
	}{
		{name: "nil medication", med: nil},
		{name: "missing user id", med: &domain.Medication{ID: "med-001", Name: "Aspirin"}},
		{name: "malformed clock", med: invalidClock},
		{name: "negative offset", med: invalidOffset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := repo.Save(ctx, tt.med); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestMedicationRepositoryFindActiveForUserAndWeekday(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewMedicationRepository(client)

	weekdaysOnly := testutil.Medication("user-002", "med-weekday", "Lisinopril", "09:00")
	weekdaysOnly.ActiveDays = []domain.Weekday{
		domain.Monday, domain.Tuesday, domain.Wednesday, domain.Thursday, domain.Friday,
	}
	daily := testutil.Medication("user-002", "med-daily", "Metformin", "19:00")

	for _, med := range []*domain.Medication{weekdaysOnly, daily} {
		if err := repo.Save(ctx, med); err != nil {
			t.Fatalf("failed to save medication: %v", err)
		}
	}

	tests := []struct {
		name     string
		day      domain.Weekday
		expected []string
	}{
		{
			name:     "weekday matches both",
			day:      domain.Monday,
			expected: []string{"med-daily", "med-weekday"},
		},
		{
			name:     "weekend matches daily only",
			day:      domain.Saturday,
			expected: []string{"med-daily"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meds, err := repo.FindActiveForUserAndWeekday(ctx, "user-002", tt.day)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(meds) != len(tt.expected) {
				t.Fatalf("expected %d medications, got %d", len(tt.expected), len(meds))
			}
			for i, id := range tt.expected {
				if meds[i].ID != id {
					t.Errorf("expected medication %s at %d, got %s", id, i, meds[i].ID)
				}
			}
		})
	}
}

func TestMedicationRepositoryListUserIDs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewMedicationRepository(client)

	ids, err := repo.ListUserIDs(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected no users, got %d", len(ids))
	}

	for _, med := range []*domain.Medication{
		testutil.Medication("user-b", "med-001", "Aspirin", "08:00"),
		testutil.Medication("user-a", "med-001", "Aspirin", "08:00"),
		testutil.Medication("user-a", "med-002", "Metformin", "20:00"),
	} {
		if err := repo.Save(ctx, med); err != nil {
			t.Fatalf("failed to save medication: %v", err)
		}
	}

	ids, err = repo.ListUserIDs(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{"user-a", "user-b"}
	if len(ids) != len(expected) {
		t.Fatalf("expected %d users, got %d", len(expected), len(ids))
	}
	for i, id := range expected {
		if ids[i] != id {
			t.Errorf("expected user %s at %d, got %s", id, i, ids[i])
		}
	}
}

func TestMedicationRepositoryFindByUserEmpty(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	repo := NewMedicationRepository(client)

	meds, err := repo.FindByUser(ctx, "user-unknown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(meds) != 0 {
		t.Errorf("expected no medications, got %d", len(meds))
	}

	if _, err := repo.FindByUser(ctx, ""); err != domain.ErrUserIDRequired {
		t.Errorf("expected ErrUserIDRequired, got %v", err)
	}
}
