package domain

import (
	"time"

	"github.com/KasumiMercury/primind-timebomb/timebomb"
)

// Deadline is a named, owned timebomb declared in a manifest.
type Deadline struct {
	Name        string
	At          time.Time
	Policy      timebomb.Policy
	LeadTime    time.Duration
	Owner       string
	Description string

	// Delay is only set for slow deadlines.
	Delay timebomb.DelayPolicy
}

func (d Deadline) Window(now time.Time) timebomb.Window {
	return timebomb.Classify(now, d.At, d.LeadTime)
}

// Remaining is negative once the deadline has passed.
func (d Deadline) Remaining(now time.Time) time.Duration {
	return d.At.Sub(now)
}

// WouldDelay returns the delay SlowAfter would apply at now without sleeping.
// It is zero unless the deadline is a slow one and has expired.
func (d Deadline) WouldDelay(now time.Time) time.Duration {
	if d.Policy != timebomb.PolicySlow || d.Delay == nil || !d.Window(now).IsExpired() {
		return 0
	}
	return d.Delay.Delay(now.Sub(d.At))
}

func ParsePolicy(s string) (timebomb.Policy, error) {
	switch p := timebomb.Policy(s); p {
	case timebomb.PolicyWarn, timebomb.PolicySlow, timebomb.PolicyFail:
		return p, nil
	default:
		return "", ErrInvalidPolicy
	}
}
