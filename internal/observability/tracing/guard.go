package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KasumiMercury/primind-timebomb/timebomb"
)

const guardTracerName = "github.com/KasumiMercury/primind-timebomb/internal/service/audit"

func GuardTracer() trace.Tracer {
	return otel.Tracer(guardTracerName)
}

// EvaluationObserver annotates the span in the guard's context with one
// event per evaluation. Calls without a recording span are ignored.
type EvaluationObserver struct{}

func (EvaluationObserver) ObserveEvaluation(ctx context.Context, e timebomb.Evaluation) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("timebomb.policy", e.Policy.String()),
		attribute.String("timebomb.window", e.Window.String()),
		attribute.String("timebomb.deadline", e.Deadline.Format(time.RFC3339)),
	}
	if e.Delay > 0 {
		attrs = append(attrs, attribute.Int64("timebomb.delay_ms", e.Delay.Milliseconds()))
	}

	span.AddEvent("timebomb.evaluate", trace.WithAttributes(attrs...))
}

func StartAuditSpan(ctx context.Context, deadlineCount int, evaluatedAt time.Time) (context.Context, trace.Span) {
	return GuardTracer().Start(ctx, "timebomb.audit",
		trace.WithAttributes(
			attribute.Int("audit.deadline_count", deadlineCount),
			attribute.String("audit.evaluated_at", evaluatedAt.Format(time.RFC3339)),
		),
	)
}

func RecordAuditResult(span trace.Span, expiredCount, approachingCount, dormantCount int, err error) {
	span.SetAttributes(
		attribute.Int("audit.expired_count", expiredCount),
		attribute.Int("audit.approaching_count", approachingCount),
		attribute.Int("audit.dormant_count", dormantCount),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}

func StartRedisOperationSpan(ctx context.Context, operation, key string) (context.Context, trace.Span) {
	return GuardTracer().Start(ctx, "timebomb.redis."+operation,
		trace.WithAttributes(
			attribute.String("db.system", "redis"),
			attribute.String("db.operation", operation),
			attribute.String("db.key", key),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}
