package timebomb

import (
	"errors"
	"testing"
	"time"
)

func TestGuard_DefaultsAndOverrides(t *testing.T) {
	base := &sinkRecorder{}
	override := &sinkRecorder{}

	guard := NewGuard(
		WithSink(base.sink),
		WithClock(FixedClock(testNow)),
		WithLeadTimeDays(14),
	)

	// Ten days out is only inside the guard's 14-day lead time.
	if err := guard.FailAfter(testNow.Add(10 * day)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(base.messages) != 1 {
		t.Fatalf("base sink calls = %d, want 1", len(base.messages))
	}

	if err := guard.FailAfter(testNow.Add(10*day), WithSink(override.sink), WithLeadTimeDays(7)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(override.messages) != 0 {
		t.Errorf("override sink calls = %d, want 0", len(override.messages))
	}

	guard.WarnAfter(testNow.Add(-day), WithSink(override.sink))
	if len(override.messages) != 1 {
		t.Errorf("override sink calls = %d, want 1", len(override.messages))
	}
	if len(base.messages) != 1 {
		t.Errorf("per-call override leaked into the guard: base sink calls = %d", len(base.messages))
	}
}

func TestGuard_With(t *testing.T) {
	rec := &sinkRecorder{}
	sleeps := &sleepRecorder{}

	parent := NewGuard(WithClock(FixedClock(testNow)), WithSleeper(sleeps.sleep))
	child := parent.With(WithSink(rec.sink))

	child.SlowAfter(testNow.Add(-day), Fixed(5))

	if len(rec.messages) != 1 {
		t.Errorf("sink calls = %d, want 1", len(rec.messages))
	}
	if len(sleeps.calls) != 1 || sleeps.calls[0] != 5*time.Millisecond {
		t.Errorf("sleeps = %v, want [5ms]", sleeps.calls)
	}

	if got := parent.Classify(testNow.Add(day)); got != WindowApproaching {
		t.Errorf("Classify() = %v, want %v", got, WindowApproaching)
	}
}

func TestGuard_FailAfterExpired(t *testing.T) {
	guard := NewGuard(WithClock(FixedClock(testNow)))

	err := guard.FailAfter(testNow.Add(-time.Second))

	if !errors.Is(err, ErrExpired) {
		t.Errorf("error = %v, want ErrExpired", err)
	}
}
