package warnsink

import (
	"testing"
	"time"
)

func TestMemorySink(t *testing.T) {
	var got []string
	sink := NewMemorySink(time.Hour, func(msg string) { got = append(got, msg) })

	sink.Warn("a")
	sink.Warn("a")
	sink.Warn("b")
	sink.Warn("a")

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("forwarded = %v, want [a b]", got)
	}
}

func TestMemorySink_Expires(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping timing test in short mode")
	}

	count := 0
	sink := NewMemorySink(20*time.Millisecond, func(string) { count++ })

	sink.Warn("a")
	time.Sleep(60 * time.Millisecond)
	sink.Warn("a")

	if count != 2 {
		t.Errorf("forwarded = %d, want 2", count)
	}
}

func TestMemorySink_ZeroIntervalForwardsAll(t *testing.T) {
	count := 0
	sink := NewMemorySink(0, func(string) { count++ })

	for range 3 {
		sink.Warn("a")
	}

	if count != 3 {
		t.Errorf("forwarded = %d, want 3", count)
	}
}

func TestDedupKey(t *testing.T) {
	if dedupKey("x") != dedupKey("x") {
		t.Error("key must be stable")
	}
	if dedupKey("x") == dedupKey("y") {
		t.Error("distinct messages must not collide")
	}
}
