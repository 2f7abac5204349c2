package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const schedulerMeterName = "reminder.scheduler"

type SchedulerMetrics struct {
	eventsPlanned    metric.Int64Counter
	eventsDuplicate  metric.Int64Counter
	deliveries       metric.Int64Counter
	runDuration      metric.Float64Histogram
	medicationsFetch metric.Int64Counter
}

func NewSchedulerMetrics() (*SchedulerMetrics, error) {
	meter := otel.Meter(schedulerMeterName)

	eventsPlanned, err := meter.Int64Counter(
		"reminder_events_planned_total",
		metric.WithDescription("Total number of reminder events planned and persisted"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, err
	}

	eventsDuplicate, err := meter.Int64Counter(
		"reminder_events_duplicate_total",
		metric.WithDescription("Total number of reminder events rejected by the idempotency key"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, err
	}

	deliveries, err := meter.Int64Counter(
		"reminder_deliveries_total",
		metric.WithDescription("Total number of reminder deliveries attempted"),
		metric.WithUnit("{delivery}"),
	)
	if err != nil {
		return nil, err
	}

	runDuration, err := meter.Float64Histogram(
		"reminder_scheduler_run_duration_seconds",
		metric.WithDescription("Scheduler run duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5,
		),
	)
	if err != nil {
		return nil, err
	}

	medicationsFetch, err := meter.Int64Counter(
		"reminder_medications_fetched_total",
		metric.WithDescription("Medications considered per scheduler run"),
		metric.WithUnit("{medication}"),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerMetrics{
		eventsPlanned:    eventsPlanned,
		eventsDuplicate:  eventsDuplicate,
		deliveries:       deliveries,
		runDuration:      runDuration,
		medicationsFetch: medicationsFetch,
	}, nil
}

func (m *SchedulerMetrics) RecordEventPlanned(ctx context.Context, kind string) {
	m.eventsPlanned.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

func (m *SchedulerMetrics) RecordEventDuplicate(ctx context.Context, kind string) {
	m.eventsDuplicate.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

func (m *SchedulerMetrics) RecordDelivery(ctx context.Context, kind, outcome string) {
	m.deliveries.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("outcome", outcome),
	))
}

func (m *SchedulerMetrics) RecordRunDuration(ctx context.Context, duration time.Duration) {
	m.runDuration.Record(ctx, duration.Seconds())
}

func (m *SchedulerMetrics) RecordMedicationsFetched(ctx context.Context, count int) {
	m.medicationsFetch.Add(ctx, int64(count))
}
