package adherence

import (
	"context"
	"log/slog"
	"time"

	"github.com/medremind/reminder-engine/internal/domain"
	"github.com/medremind/reminder-engine/internal/observability/metrics"
)

// Service answers streak and window-stats queries over the adherence records
// embedded in a user's medications. Records are written elsewhere; every
// answer is recomputed from the store on demand.
type Service struct {
	medRepo          domain.MedicationRepository
	analyticsMetrics *metrics.AnalyticsMetrics
	now              func() time.Time
}

func NewService(medRepo domain.MedicationRepository, analyticsMetrics *metrics.AnalyticsMetrics) *Service {
	return &Service{
		medRepo:          medRepo,
		analyticsMetrics: analyticsMetrics,
		now:              time.Now,
	}
}

func (s *Service) Streak(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, domain.ErrUserIDRequired
	}

	records, err := s.collectRecords(ctx, userID)
	if err != nil {
		return 0, err
	}

	streak := StreakDays(records, s.now())

	if s.analyticsMetrics != nil {
		s.analyticsMetrics.RecordQuery(ctx, "streak")
	}

	slog.DebugContext(ctx, "streak computed",
		slog.String("user_id", userID),
		slog.Int("record_count", len(records)),
		slog.Int("streak_days", streak),
	)

	return streak, nil
}

func (s *Service) Stats(ctx context.Context, userID string, windowDays int) (domain.AdherenceSnapshot, error) {
	if userID == "" {
		return domain.AdherenceSnapshot{}, domain.ErrUserIDRequired
	}
	if windowDays < 1 {
		windowDays = 1
	}

	records, err := s.collectRecords(ctx, userID)
	if err != nil {
		return domain.AdherenceSnapshot{}, err
	}

	snapshot := Stats(records, windowDays, s.now())

	if s.analyticsMetrics != nil {
		s.analyticsMetrics.RecordQuery(ctx, "stats")
	}

	return snapshot, nil
}

func (s *Service) collectRecords(ctx context.Context, userID string) ([]domain.AdherenceRecord, error) {
	meds, err := s.medRepo.FindByUser(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch medications for analytics",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	records := make([]domain.AdherenceRecord, 0)
	for _, med := range meds {
		records = append(records, med.AdherenceHistory...)
	}
	return records, nil
}
