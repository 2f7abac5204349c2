package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/medremind/reminder-engine/internal/domain"
	"github.com/medremind/reminder-engine/internal/infra/notifier"
	"github.com/medremind/reminder-engine/internal/observability/metrics"
	"github.com/medremind/reminder-engine/internal/observability/tracing"
	"github.com/medremind/reminder-engine/internal/service/schedule"
)

const testEventDelay = 10 * time.Second

// Service executes one scheduler run: fetch the user's active regimen for the
// day, plan the reminder events, append them to the day's log, and arm a
// delivery timer for every event that survived deduplication. Runs are
// idempotent; re-running a day only arms timers for events the log has not
// seen before.
type Service struct {
	medRepo          domain.MedicationRepository
	logRepo          domain.NotificationLogRepository
	channel          notifier.Channel
	recorder         domain.DeliveryRecorder
	dispatcher       *Dispatcher
	planner          *schedule.Planner
	schedulerMetrics *metrics.SchedulerMetrics
	now              func() time.Time
}

func NewService(
	medRepo domain.MedicationRepository,
	logRepo domain.NotificationLogRepository,
	channel notifier.Channel,
	recorder domain.DeliveryRecorder,
	dispatcher *Dispatcher,
	schedulerMetrics *metrics.SchedulerMetrics,
) *Service {
	return &Service{
		medRepo:          medRepo,
		logRepo:          logRepo,
		channel:          channel,
		recorder:         recorder,
		dispatcher:       dispatcher,
		planner:          schedule.NewPlanner(),
		schedulerMetrics: schedulerMetrics,
		now:              time.Now,
	}
}

// Run plans and arms the reminders of userID for day. A zero day means the
// current day. A storage failure aborts the run; events persisted before the
// failure keep their timers and are deduplicated on the next run.
func (s *Service) Run(ctx context.Context, userID string, day time.Time) (*RunResult, error) {
	if userID == "" {
		return nil, domain.ErrUserIDRequired
	}

	now := s.now()
	if day.IsZero() {
		day = now
	}

	runID := uuid.NewString()
	dateKey := domain.DateKey(day)
	dayName := domain.WeekdayOf(day).DayName()

	ctx, span := tracing.StartRunSpan(ctx, runID, userID, dateKey)
	defer span.End()

	started := now
	result := &RunResult{
		RunID:   runID,
		UserID:  userID,
		Date:    dateKey,
		DayName: dayName,
		Events:  make([]PlannedEventItem, 0),
	}

	defer func() {
		if s.schedulerMetrics != nil {
			s.schedulerMetrics.RecordRunDuration(ctx, s.now().Sub(started))
		}
	}()

	meds, err := s.medRepo.FindActiveForUserAndWeekday(ctx, userID, domain.WeekdayOf(day))
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch medications",
			slog.String("user_id", userID),
			slog.String("date", dateKey),
			slog.String("error", err.Error()),
		)
		tracing.RecordRunResult(span, 0, 0, 0, err)
		return nil, err
	}

	result.MedicationCount = len(meds)
	if s.schedulerMetrics != nil {
		s.schedulerMetrics.RecordMedicationsFetched(ctx, len(meds))
	}

	events := make([]domain.ReminderEvent, 0, len(meds)*3)
	for i := range meds {
		planned, err := s.planner.Plan(&meds[i], day, now)
		if err != nil {
			slog.ErrorContext(ctx, "failed to plan reminders",
				slog.String("user_id", userID),
				slog.String("medication_id", meds[i].ID),
				slog.String("error", err.Error()),
			)
			tracing.RecordRunResult(span, result.PlannedCount, result.DuplicateCount, len(meds), err)
			return nil, err
		}
		events = append(events, planned...)
	}

	events = append(events, domain.ReminderEvent{
		Kind:    domain.KindTest,
		At:      now.Add(testEventDelay),
		Title:   "Test Notification",
		Message: fmt.Sprintf("Reminders scheduled for %s", dayName),
	})

	for _, event := range events {
		duplicate, err := s.logRepo.UpsertAppend(ctx, userID, dateKey, dayName, event)
		if err != nil {
			slog.ErrorContext(ctx, "failed to persist reminder event",
				slog.String("user_id", userID),
				slog.String("date", dateKey),
				slog.String("kind", event.Kind.String()),
				slog.String("error", err.Error()),
			)
			tracing.RecordRunResult(span, result.PlannedCount, result.DuplicateCount, len(meds), err)
			return nil, err
		}

		result.Events = append(result.Events, PlannedEventItem{
			Kind:           event.Kind.String(),
			MedicationID:   event.MedicationID,
			MedicationName: event.MedicationName,
			At:             event.At,
			Duplicate:      duplicate,
		})

		if duplicate {
			result.DuplicateCount++
			if s.schedulerMetrics != nil {
				s.schedulerMetrics.RecordEventDuplicate(ctx, event.Kind.String())
			}
			continue
		}

		result.PlannedCount++
		if s.schedulerMetrics != nil {
			s.schedulerMetrics.RecordEventPlanned(ctx, event.Kind.String())
		}

		// The delivery outlives the request that planned it.
		fireCtx := context.WithoutCancel(ctx)
		ev := event
		s.dispatcher.Schedule(ev.Key(userID, dateKey), ev.At, func() {
			s.deliver(fireCtx, runID, userID, ev)
		})
	}

	slog.InfoContext(ctx, "scheduler run completed",
		slog.String("run_id", runID),
		slog.String("user_id", userID),
		slog.String("date", dateKey),
		slog.Int("medication_count", result.MedicationCount),
		slog.Int("planned_count", result.PlannedCount),
		slog.Int("duplicate_count", result.DuplicateCount),
	)

	tracing.RecordRunResult(span, result.PlannedCount, result.DuplicateCount, len(meds), nil)
	return result, nil
}

// CancelDay drops every pending timer of userID for dateKey. The log entries
// stay, so a later re-run reports the events as duplicates instead of
// re-delivering them.
func (s *Service) CancelDay(ctx context.Context, userID, dateKey string) int {
	cancelled := s.dispatcher.CancelPrefix(userID + ":" + dateKey + ":")

	slog.InfoContext(ctx, "cancelled pending reminders",
		slog.String("user_id", userID),
		slog.String("date", dateKey),
		slog.Int("cancelled_count", cancelled),
	)

	return cancelled
}

func (s *Service) deliver(ctx context.Context, runID, userID string, event domain.ReminderEvent) {
	ctx, span := tracing.StartDeliverySpan(ctx, event.Kind.String(), event.MedicationID, event.At)
	defer span.End()

	err := s.channel.Notify(ctx, &notifier.Notification{
		UserID:      userID,
		Title:       event.Title,
		Message:     event.Message,
		Kind:        event.Kind,
		DedupKey:    event.Key(userID, domain.DateKey(event.At)),
		ScheduledAt: event.At,
	})

	delivered := s.now()
	lag := delivered.Sub(event.At)

	outcome := "delivered"
	if err != nil {
		outcome = "failed"
		slog.ErrorContext(ctx, "failed to deliver reminder",
			slog.String("user_id", userID),
			slog.String("kind", event.Kind.String()),
			slog.Time("scheduled_at", event.At),
			slog.String("error", err.Error()),
		)
	}

	if s.schedulerMetrics != nil {
		s.schedulerMetrics.RecordDelivery(ctx, event.Kind.String(), outcome)
	}
	tracing.RecordDeliveryResult(span, lag, err)

	if s.recorder != nil {
		record := domain.DeliveryRecord{
			RunID:          runID,
			UserID:         userID,
			MedicationID:   event.MedicationID,
			Kind:           event.Kind,
			ScheduledAt:    event.At,
			DeliveredAt:    delivered,
			DeliveryFailed: err != nil,
		}
		if rerr := s.recorder.RecordDelivery(ctx, record); rerr != nil {
			slog.WarnContext(ctx, "failed to record delivery result",
				slog.String("user_id", userID),
				slog.String("error", rerr.Error()),
			)
		}
	}
}
