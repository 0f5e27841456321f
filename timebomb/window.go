package timebomb

import "time"

// DefaultLeadTime is how long before a deadline the approaching warning starts.
const DefaultLeadTime = 7 * 24 * time.Hour

// Window is the position of "now" relative to a deadline and its lead time.
type Window string

const (
	WindowDormant     Window = "dormant"
	WindowApproaching Window = "approaching"
	WindowExpired     Window = "expired"
)

func (w Window) String() string {
	return string(w)
}

func (w Window) IsExpired() bool {
	return w == WindowExpired
}

func (w Window) IsApproaching() bool {
	return w == WindowApproaching
}

// Classify places now into exactly one window.
//
// Expired requires now to be strictly after the deadline, so the instant
// now == deadline is still Approaching (for a positive lead time). A deadline
// exactly leadTime away is Dormant.
func Classify(now, deadline time.Time, leadTime time.Duration) Window {
	if now.After(deadline) {
		return WindowExpired
	}

	if now.Add(leadTime).After(deadline) {
		return WindowApproaching
	}

	return WindowDormant
}
