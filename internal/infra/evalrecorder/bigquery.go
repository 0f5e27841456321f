//go:build gcloud

package evalrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/primind-timebomb/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt       time.Time `bigquery:"recorded_at"`
	EvaluatedAt      time.Time `bigquery:"evaluated_at"`
	RunID            string    `bigquery:"run_id"`
	Deadline         string    `bigquery:"deadline"`
	Owner            string    `bigquery:"owner"`
	Policy           string    `bigquery:"policy"`
	Window           string    `bigquery:"window"`
	DeadlineAt       time.Time `bigquery:"deadline_at"`
	RemainingSeconds float64   `bigquery:"remaining_seconds"`
	DelayMs          float64   `bigquery:"delay_ms"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	dataset  string
	table    string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.EvaluationRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "evaluation recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, evaluation recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, evaluation recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	inserter := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable).Inserter()

	slog.InfoContext(ctx, "evaluation recorder initialized",
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

func (r *bigQueryRecorder) RecordEvaluations(ctx context.Context, records []domain.EvaluationRecord) error {
	if len(records) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]*bigQueryRecord, 0, len(records))
	for _, record := range records {
		rows = append(rows, &bigQueryRecord{
			RecordedAt:       now,
			EvaluatedAt:      record.EvaluatedAt,
			RunID:            record.RunID,
			Deadline:         record.Name,
			Owner:            record.Owner,
			Policy:           record.Policy,
			Window:           record.Window,
			DeadlineAt:       record.Deadline,
			RemainingSeconds: record.Remaining.Seconds(),
			DelayMs:          record.DelayMs,
		})
	}

	if err := r.inserter.Put(ctx, rows); err != nil {
		slog.WarnContext(ctx, "failed to insert evaluations to BigQuery",
			slog.String("error", err.Error()),
			slog.Int("record_count", len(records)),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(_ context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
