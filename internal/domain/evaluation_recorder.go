package domain

import (
	"context"
	"time"
)

type EvaluationRecord struct {
	RunID       string
	Name        string
	Owner       string
	Policy      string
	Window      string
	Deadline    time.Time
	EvaluatedAt time.Time
	Remaining   time.Duration
	DelayMs     float64
}

//go:generate mockgen -source=evaluation_recorder.go -destination=mock_evaluation_recorder.go -package=domain

type EvaluationRecorder interface {
	RecordEvaluations(ctx context.Context, records []EvaluationRecord) error
	Flush(ctx context.Context) error
	Close() error
}
