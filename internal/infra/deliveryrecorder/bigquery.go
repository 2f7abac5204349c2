//go:build gcloud

package deliveryrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/medremind/reminder-engine/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt     time.Time `bigquery:"recorded_at"`
	RunID          string    `bigquery:"run_id"`
	UserID         string    `bigquery:"user_id"`
	MedicationID   string    `bigquery:"medication_id"`
	Kind           string    `bigquery:"kind"`
	ScheduledAt    time.Time `bigquery:"scheduled_at"`
	DeliveredAt    time.Time `bigquery:"delivered_at"`
	DeliveryFailed bool      `bigquery:"delivery_failed"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	dataset  string
	table    string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.DeliveryRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "delivery result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, delivery result recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, delivery result recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	table := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable)
	inserter := table.Inserter()

	slog.InfoContext(ctx, "delivery result recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
		dataset:  cfg.BigQueryDataset,
		table:    cfg.BigQueryTable,
	}, nil
}

func (r *bigQueryRecorder) RecordDelivery(ctx context.Context, record domain.DeliveryRecord) error {
	row := &bigQueryRecord{
		RecordedAt:     time.Now(),
		RunID:          record.RunID,
		UserID:         record.UserID,
		MedicationID:   record.MedicationID,
		Kind:           record.Kind.String(),
		ScheduledAt:    record.ScheduledAt,
		DeliveredAt:    record.DeliveredAt,
		DeliveryFailed: record.DeliveryFailed,
	}

	if err := r.inserter.Put(ctx, row); err != nil {
		slog.WarnContext(ctx, "failed to insert delivery result to BigQuery",
			slog.String("error", err.Error()),
			slog.String("user_id", record.UserID),
			slog.String("kind", record.Kind.String()),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
