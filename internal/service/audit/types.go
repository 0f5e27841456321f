package audit

import (
	"time"

	"github.com/KasumiMercury/primind-timebomb/timebomb"
)

type Item struct {
	Name        string          `json:"name"`
	Owner       string          `json:"owner,omitempty"`
	Description string          `json:"description,omitempty"`
	Policy      timebomb.Policy `json:"policy"`
	Window      timebomb.Window `json:"window"`
	Deadline    time.Time       `json:"deadline"`
	LeadTime    time.Duration   `json:"-"`
	Remaining   time.Duration   `json:"-"`
	// DelayMs is what SlowAfter would currently impose; zero unless expired.
	DelayMs float64 `json:"delay_ms,omitempty"`

	// PreviousWindow is empty when no earlier observation is stored.
	PreviousWindow timebomb.Window `json:"previous_window,omitempty"`
	Transitioned   bool            `json:"transitioned,omitempty"`
}

type Report struct {
	RunID            string    `json:"run_id"`
	EvaluatedAt      time.Time `json:"evaluated_at"`
	ExpiredCount     int       `json:"expired_count"`
	ApproachingCount int       `json:"approaching_count"`
	DormantCount     int       `json:"dormant_count"`
	TransitionCount  int       `json:"transition_count"`
	Items            []Item    `json:"items"`
}

// Failing lists expired deadlines with the fail policy, or every expired
// deadline when strict is set.
func (r *Report) Failing(strict bool) []Item {
	var out []Item
	for _, item := range r.Items {
		if !item.Window.IsExpired() {
			continue
		}
		if strict || item.Policy == timebomb.PolicyFail {
			out = append(out, item)
		}
	}
	return out
}
