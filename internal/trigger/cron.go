package trigger

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/medremind/reminder-engine/internal/domain"
	"github.com/medremind/reminder-engine/internal/service/scheduler"
)

// CronTrigger runs the scheduler for every known user on a cron spec. It is
// the daily re-plan: each run is idempotent against the log store, so a
// restart mid-cycle at worst re-plans a day that is already planned.
type CronTrigger struct {
	cron             *cron.Cron
	medRepo          domain.MedicationRepository
	schedulerService *scheduler.Service
	spec             string
}

func NewCronTrigger(medRepo domain.MedicationRepository, schedulerService *scheduler.Service, spec string) *CronTrigger {
	return &CronTrigger{
		cron:             cron.New(),
		medRepo:          medRepo,
		schedulerService: schedulerService,
		spec:             spec,
	}
}

func (t *CronTrigger) Start(ctx context.Context) error {
	_, err := t.cron.AddFunc(t.spec, func() {
		t.runAll(ctx)
	})
	if err != nil {
		return err
	}

	t.cron.Start()

	slog.InfoContext(ctx, "scheduler cron started",
		slog.String("spec", t.spec),
	)
	return nil
}

// Stop halts the cron loop and waits for an in-flight cycle to finish.
func (t *CronTrigger) Stop() {
	stopCtx := t.cron.Stop()
	<-stopCtx.Done()
}

func (t *CronTrigger) runAll(ctx context.Context) {
	started := time.Now()

	userIDs, err := t.medRepo.ListUserIDs(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list users for scheduled run",
			slog.String("error", err.Error()),
		)
		return
	}

	succeeded := 0
	failed := 0
	for _, userID := range userIDs {
		if ctx.Err() != nil {
			slog.WarnContext(ctx, "scheduled run interrupted by shutdown",
				slog.Int("remaining_users", len(userIDs)-succeeded-failed),
			)
			return
		}

		if _, err := t.schedulerService.Run(ctx, userID, time.Time{}); err != nil {
			slog.ErrorContext(ctx, "scheduled run failed for user",
				slog.String("user_id", userID),
				slog.String("error", err.Error()),
			)
			failed++
			continue
		}
		succeeded++
	}

	slog.InfoContext(ctx, "scheduled run cycle completed",
		slog.Int("user_count", len(userIDs)),
		slog.Int("succeeded", succeeded),
		slog.Int("failed", failed),
		slog.Duration("duration", time.Since(started)),
	)
}
