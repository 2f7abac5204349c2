package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const schedulerTracerName = "github.com/medremind/reminder-engine/internal/service/scheduler"

func SchedulerTracer() trace.Tracer {
	return otel.Tracer(schedulerTracerName)
}

func StartRunSpan(ctx context.Context, runID, userID, dateKey string) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "scheduler.run",
		trace.WithAttributes(
			attribute.String("run_id", runID),
			attribute.String("user_id", userID),
			attribute.String("date", dateKey),
		),
	)
}

func RecordRunResult(span trace.Span, plannedCount, duplicateCount, medicationCount int, err error) {
	span.SetAttributes(
		attribute.Int("run.planned_count", plannedCount),
		attribute.Int("run.duplicate_count", duplicateCount),
		attribute.Int("run.medication_count", medicationCount),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func StartDeliverySpan(ctx context.Context, kind, medicationID string, scheduledAt time.Time) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "scheduler.delivery",
		trace.WithAttributes(
			attribute.String("kind", kind),
			attribute.String("medication_id", medicationID),
			attribute.String("scheduled_at", scheduledAt.Format(time.RFC3339)),
		),
	)
}

func RecordDeliveryResult(span trace.Span, lag time.Duration, err error) {
	span.SetAttributes(
		attribute.Int64("delivery.lag_ms", lag.Milliseconds()),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func StartNotifySpan(ctx context.Context, channel string) (context.Context, trace.Span) {
	return SchedulerTracer().Start(ctx, "scheduler.notify."+channel,
		trace.WithSpanKind(trace.SpanKindClient),
	)
}
