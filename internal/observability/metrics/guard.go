package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/KasumiMercury/primind-timebomb/timebomb"
)

const (
	guardMeterName = "timebomb.guard"
)

type GuardMetrics struct {
	evaluations       metric.Int64Counter
	delayDuration     metric.Float64Histogram
	deadlineRemaining metric.Float64Gauge
	auditDuration     metric.Float64Histogram
}

func NewGuardMetrics() (*GuardMetrics, error) {
	return NewGuardMetricsWithProvider(otel.GetMeterProvider())
}

func NewGuardMetricsWithProvider(provider metric.MeterProvider) (*GuardMetrics, error) {
	meter := provider.Meter(guardMeterName)

	evaluations, err := meter.Int64Counter(
		"timebomb_evaluations_total",
		metric.WithDescription("Total number of deadline evaluations"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return nil, err
	}

	delayDuration, err := meter.Float64Histogram(
		"timebomb_delay_duration_seconds",
		metric.WithDescription("Delay imposed on callers of expired slow deadlines"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10,
		),
	)
	if err != nil {
		return nil, err
	}

	deadlineRemaining, err := meter.Float64Gauge(
		"timebomb_deadline_remaining_seconds",
		metric.WithDescription("Time left until a deadline; negative once expired"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	auditDuration, err := meter.Float64Histogram(
		"timebomb_audit_duration_seconds",
		metric.WithDescription("Time spent evaluating a deadline manifest"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1,
		),
	)
	if err != nil {
		return nil, err
	}

	return &GuardMetrics{
		evaluations:       evaluations,
		delayDuration:     delayDuration,
		deadlineRemaining: deadlineRemaining,
		auditDuration:     auditDuration,
	}, nil
}

// ObserveEvaluation makes GuardMetrics usable with timebomb.WithObserver.
func (m *GuardMetrics) ObserveEvaluation(ctx context.Context, e timebomb.Evaluation) {
	m.RecordEvaluation(ctx, e.Policy.String(), e.Window.String())
	if e.Window.IsExpired() && e.Policy == timebomb.PolicySlow {
		m.RecordDelay(ctx, e.Delay)
	}
}

func (m *GuardMetrics) RecordEvaluation(ctx context.Context, policy, window string) {
	m.evaluations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("policy", policy),
		attribute.String("window", window),
	))
}

func (m *GuardMetrics) RecordDelay(ctx context.Context, delay time.Duration) {
	if delay < 0 {
		delay = 0
	}
	m.delayDuration.Record(ctx, delay.Seconds())
}

func (m *GuardMetrics) RecordDeadlineRemaining(ctx context.Context, name, policy string, remaining time.Duration) {
	m.deadlineRemaining.Record(ctx, remaining.Seconds(), metric.WithAttributes(
		attribute.String("deadline", name),
		attribute.String("policy", policy),
	))
}

func (m *GuardMetrics) RecordAuditDuration(ctx context.Context, duration time.Duration) {
	m.auditDuration.Record(ctx, duration.Seconds())
}
