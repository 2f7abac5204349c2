package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const analyticsMeterName = "reminder.analytics"

type AnalyticsMetrics struct {
	queries metric.Int64Counter
}

func NewAnalyticsMetrics() (*AnalyticsMetrics, error) {
	meter := otel.Meter(analyticsMeterName)

	queries, err := meter.Int64Counter(
		"adherence_queries_total",
		metric.WithDescription("Adherence analytics queries served"),
		metric.WithUnit("{query}"),
	)
	if err != nil {
		return nil, err
	}

	return &AnalyticsMetrics{queries: queries}, nil
}

func (m *AnalyticsMetrics) RecordQuery(ctx context.Context, operation string) {
	m.queries.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}
