package timebomb

import "time"

const day = 24 * time.Hour

// DelayPolicy decides how long SlowAfter blocks once a deadline has expired.
// The only implementations are Fixed and Scaled.
type DelayPolicy interface {
	// Delay returns the delay for the given time elapsed past the deadline.
	Delay(elapsed time.Duration) time.Duration
	// Millis returns the same delay in fractional milliseconds.
	Millis(elapsed time.Duration) float64

	delayPolicy()
}

// Fixed is a constant delay in milliseconds.
type Fixed float64

func (f Fixed) Millis(_ time.Duration) float64 {
	return float64(f)
}

func (f Fixed) Delay(elapsed time.Duration) time.Duration {
	return millisToDuration(f.Millis(elapsed))
}

func (Fixed) delayPolicy() {}

// Scaled maps the fractional days elapsed past the deadline to a delay in
// milliseconds. The result is neither capped nor validated.
type Scaled func(daysElapsed float64) float64

func (s Scaled) Millis(elapsed time.Duration) float64 {
	return s(DaysElapsed(elapsed))
}

func (s Scaled) Delay(elapsed time.Duration) time.Duration {
	return millisToDuration(s.Millis(elapsed))
}

func (Scaled) delayPolicy() {}

// Linear returns a Scaled policy adding msPerDay milliseconds for every day
// past the deadline.
func Linear(msPerDay float64) Scaled {
	return func(daysElapsed float64) float64 {
		return daysElapsed * msPerDay
	}
}

// DaysElapsed converts an elapsed duration into fractional days, clamped at zero.
func DaysElapsed(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(day)
}

func millisToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
