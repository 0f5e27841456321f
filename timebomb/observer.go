package timebomb

import (
	"context"
	"time"
)

// Policy names the entry point that evaluated a deadline.
type Policy string

const (
	PolicyWarn Policy = "warn"
	PolicySlow Policy = "slow"
	PolicyFail Policy = "fail"
)

func (p Policy) String() string {
	return string(p)
}

// Evaluation describes one guard invocation. Delay is set only for an
// expired SlowAfter call.
type Evaluation struct {
	Policy   Policy
	Deadline time.Time
	Now      time.Time
	LeadTime time.Duration
	Window   Window
	Delay    time.Duration
}

// Observer is notified of every evaluation before the guard acts on it.
type Observer interface {
	ObserveEvaluation(ctx context.Context, e Evaluation)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, e Evaluation)

func (f ObserverFunc) ObserveEvaluation(ctx context.Context, e Evaluation) {
	f(ctx, e)
}
