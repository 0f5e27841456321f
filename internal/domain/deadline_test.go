package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/KasumiMercury/primind-timebomb/timebomb"
)

func TestDeadline_WouldDelay(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	tests := []struct {
		name     string
		deadline Deadline
		want     time.Duration
	}{
		{
			name:     "expired slow with linear delay",
			deadline: Deadline{Policy: timebomb.PolicySlow, At: now.Add(-2 * day), LeadTime: timebomb.DefaultLeadTime, Delay: timebomb.Linear(10)},
			want:     20 * time.Millisecond,
		},
		{
			name:     "approaching slow",
			deadline: Deadline{Policy: timebomb.PolicySlow, At: now.Add(day), LeadTime: timebomb.DefaultLeadTime, Delay: timebomb.Fixed(10)},
			want:     0,
		},
		{
			name:     "expired fail has no delay",
			deadline: Deadline{Policy: timebomb.PolicyFail, At: now.Add(-day), LeadTime: timebomb.DefaultLeadTime},
			want:     0,
		},
		{
			name:     "slow without delay policy",
			deadline: Deadline{Policy: timebomb.PolicySlow, At: now.Add(-day), LeadTime: timebomb.DefaultLeadTime},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.deadline.WouldDelay(now); got != tt.want {
				t.Errorf("WouldDelay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePolicy(t *testing.T) {
	for _, s := range []string{"warn", "slow", "fail"} {
		if got, err := ParsePolicy(s); err != nil || got.String() != s {
			t.Errorf("ParsePolicy(%q) = %v, %v", s, got, err)
		}
	}

	if _, err := ParsePolicy("explode"); !errors.Is(err, ErrInvalidPolicy) {
		t.Errorf("error = %v, want ErrInvalidPolicy", err)
	}
}
