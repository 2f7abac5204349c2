package adherence

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/medremind/reminder-engine/internal/domain"
)

func fixedNowService(svc *Service, now time.Time) *Service {
	svc.now = func() time.Time { return now }
	return svc
}

func TestService_Streak_FlattensAcrossMedications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	mockRepo := domain.NewMockMedicationRepository(ctrl)
	mockRepo.EXPECT().
		FindByUser(gomock.Any(), "user-1").
		Return([]domain.Medication{
			{
				ID: "med-1",
				AdherenceHistory: []domain.AdherenceRecord{
					{Date: now, Status: domain.StatusTaken},
				},
			},
			{
				ID: "med-2",
				AdherenceHistory: []domain.AdherenceRecord{
					{Date: now.AddDate(0, 0, -1), Status: domain.StatusTaken},
				},
			},
		}, nil)

	svc := fixedNowService(NewService(mockRepo, nil), now)

	streak, err := svc.Streak(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if streak != 2 {
		t.Errorf("streak = %d, want 2", streak)
	}
}

func TestService_Streak_NoMedications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockMedicationRepository(ctrl)
	mockRepo.EXPECT().
		FindByUser(gomock.Any(), "user-1").
		Return([]domain.Medication{}, nil)

	svc := NewService(mockRepo, nil)

	streak, err := svc.Streak(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if streak != 0 {
		t.Errorf("streak = %d, want 0", streak)
	}
}

func TestService_Streak_MissingUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewService(domain.NewMockMedicationRepository(ctrl), nil)

	if _, err := svc.Streak(context.Background(), ""); !errors.Is(err, domain.ErrUserIDRequired) {
		t.Errorf("error = %v, want ErrUserIDRequired", err)
	}
}

func TestService_Stats_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoErr := errors.New("connection refused")

	mockRepo := domain.NewMockMedicationRepository(ctrl)
	mockRepo.EXPECT().
		FindByUser(gomock.Any(), "user-1").
		Return(nil, repoErr)

	svc := NewService(mockRepo, nil)

	if _, err := svc.Stats(context.Background(), "user-1", 30); !errors.Is(err, repoErr) {
		t.Errorf("error = %v, want wrapped repository error", err)
	}
}

func TestService_Stats_WindowFloor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	mockRepo := domain.NewMockMedicationRepository(ctrl)
	mockRepo.EXPECT().
		FindByUser(gomock.Any(), "user-1").
		Return([]domain.Medication{
			{
				ID: "med-1",
				AdherenceHistory: []domain.AdherenceRecord{
					{Date: now.Add(-time.Hour), Status: domain.StatusTaken},
				},
			},
		}, nil)

	svc := fixedNowService(NewService(mockRepo, nil), now)

	// windowDays below 1 is clamped rather than producing an empty window.
	snapshot, err := svc.Stats(context.Background(), "user-1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snapshot.TotalDoses != 1 {
		t.Errorf("TotalDoses = %d, want 1", snapshot.TotalDoses)
	}
}
