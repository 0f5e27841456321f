package nonprod

import (
	"errors"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-timebomb/timebomb"
)

func TestNonprod_SilentInProduction(t *testing.T) {
	t.Setenv("ENV", "production")

	past := time.Now().Add(-24 * time.Hour)
	warned := false
	sink := timebomb.WithSink(func(string) { warned = true })

	WarnAfter(past, sink)
	SlowAfter(past, timebomb.Fixed(10), sink, timebomb.WithSleeper(func(time.Duration) {
		t.Error("slept in production")
	}))
	if err := FailAfter(past, sink); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if warned {
		t.Error("sink called in production")
	}
}

func TestNonprod_FiresOutsideProduction(t *testing.T) {
	t.Setenv("ENV", "dev")
	t.Setenv("APP_ENV", "")

	err := FailAfter(time.Now().Add(-24*time.Hour), timebomb.WithSink(func(string) {}))

	if !errors.Is(err, timebomb.ErrExpired) {
		t.Errorf("error = %v, want ErrExpired", err)
	}
}

func TestNonprod_UsesCallerDetector(t *testing.T) {
	// The caller decides what counts as production.
	err := FailAfter(time.Now().Add(-24*time.Hour),
		timebomb.WithProdDetector(func() bool { return true }),
	)

	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
