package evalrecorder

import (
	"context"

	"github.com/KasumiMercury/primind-timebomb/internal/domain"
)

type noopRecorder struct{}

// NewNoopRecorder discards every record.
func NewNoopRecorder() domain.EvaluationRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordEvaluations(_ context.Context, _ []domain.EvaluationRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
