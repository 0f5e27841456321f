package tracing

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/KasumiMercury/primind-timebomb/timebomb"
)

func TestEvaluationObserver_AddsSpanEvent(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	ctx, span := provider.Tracer("test").Start(context.Background(), "request")

	timebomb.SlowAfter(now.Add(-24*time.Hour), timebomb.Fixed(15),
		timebomb.WithClock(timebomb.FixedClock(now)),
		timebomb.WithSink(func(string) {}),
		timebomb.WithSleeper(func(time.Duration) {}),
		timebomb.WithObserver(EvaluationObserver{}),
		timebomb.WithContext(ctx),
	)
	span.End()

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}
	events := spans[0].Events()
	if len(events) != 1 || events[0].Name != "timebomb.evaluate" {
		t.Fatalf("events = %+v", events)
	}

	attrs := make(map[string]string)
	for _, kv := range events[0].Attributes {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	if attrs["timebomb.window"] != "expired" || attrs["timebomb.policy"] != "slow" || attrs["timebomb.delay_ms"] != "15" {
		t.Errorf("attributes = %v", attrs)
	}
}

func TestEvaluationObserver_NoSpan(t *testing.T) {
	// Must not panic without a span in the context.
	EvaluationObserver{}.ObserveEvaluation(context.Background(), timebomb.Evaluation{Window: timebomb.WindowDormant})
}

func TestRecordAuditResult(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	_, span := provider.Tracer("test").Start(context.Background(), "audit")
	RecordAuditResult(span, 1, 2, 3, errors.New("recorder unavailable"))
	span.End()

	ended := recorder.Ended()[0]
	if ended.Status().Code != codes.Error {
		t.Errorf("status = %v, want error", ended.Status().Code)
	}
}
