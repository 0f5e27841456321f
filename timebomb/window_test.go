package timebomb

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		leadTime time.Duration
		want     Window
	}{
		{
			name:     "one day past is expired",
			deadline: now.Add(-24 * time.Hour),
			leadTime: DefaultLeadTime,
			want:     WindowExpired,
		},
		{
			name:     "one nanosecond past is expired",
			deadline: now.Add(-time.Nanosecond),
			leadTime: DefaultLeadTime,
			want:     WindowExpired,
		},
		{
			name:     "deadline equal to now is approaching",
			deadline: now,
			leadTime: DefaultLeadTime,
			want:     WindowApproaching,
		},
		{
			name:     "one day ahead is approaching",
			deadline: now.Add(24 * time.Hour),
			leadTime: DefaultLeadTime,
			want:     WindowApproaching,
		},
		{
			name:     "just inside the lead time is approaching",
			deadline: now.Add(DefaultLeadTime - time.Nanosecond),
			leadTime: DefaultLeadTime,
			want:     WindowApproaching,
		},
		{
			name:     "exactly lead time ahead is dormant",
			deadline: now.Add(DefaultLeadTime),
			leadTime: DefaultLeadTime,
			want:     WindowDormant,
		},
		{
			name:     "far future is dormant",
			deadline: now.Add(30 * 24 * time.Hour),
			leadTime: DefaultLeadTime,
			want:     WindowDormant,
		},
		{
			name:     "zero lead time never approaches",
			deadline: now.Add(time.Hour),
			leadTime: 0,
			want:     WindowDormant,
		},
		{
			name:     "zero lead time at deadline is dormant",
			deadline: now,
			leadTime: 0,
			want:     WindowDormant,
		},
		{
			name:     "custom lead time widens the window",
			deadline: now.Add(20 * 24 * time.Hour),
			leadTime: 30 * 24 * time.Hour,
			want:     WindowApproaching,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(now, tt.deadline, tt.leadTime); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify_TimezoneIndependent(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	now := time.Date(2026, 3, 10, 21, 0, 0, 0, tokyo)
	deadline := time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC) // one hour before now

	if got := Classify(now, deadline, DefaultLeadTime); got != WindowExpired {
		t.Errorf("Classify() = %v, want %v", got, WindowExpired)
	}
}
