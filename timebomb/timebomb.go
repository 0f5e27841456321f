// Package timebomb guards code paths with a deadline: warn as it approaches,
// then slow down or fail callers once it has passed.
//
// Every call classifies the current time against the deadline on its own;
// nothing is remembered between calls.
package timebomb

import (
	"fmt"
	"strconv"
	"time"
)

// WarnAfter reports through the sink once the deadline has passed. The
// approaching window is not reported.
func WarnAfter(deadline time.Time, opts ...Option) {
	o := buildOptions(nil, opts)
	warnAfter(&o, deadline)
}

// SlowAfter blocks the calling goroutine for the delay chosen by policy once
// the deadline has passed, and warns while it is approaching.
func SlowAfter(deadline time.Time, policy DelayPolicy, opts ...Option) {
	o := buildOptions(nil, opts)
	slowAfter(&o, deadline, policy)
}

// FailAfter returns an *ExpiredError once the deadline has passed, and warns
// while it is approaching.
func FailAfter(deadline time.Time, opts ...Option) error {
	o := buildOptions(nil, opts)
	return failAfter(&o, deadline)
}

func warnAfter(o *options, deadline time.Time) {
	if o.disabled() {
		return
	}

	now := o.clock.Now()
	window := Classify(now, deadline, o.leadTime)

	o.observe(Evaluation{
		Policy:   PolicyWarn,
		Deadline: deadline,
		Now:      now,
		LeadTime: o.leadTime,
		Window:   window,
	})

	if window.IsExpired() {
		o.sink(fmt.Sprintf("Timebomb expired after %s", formatDeadline(deadline)))
	}
}

func slowAfter(o *options, deadline time.Time, policy DelayPolicy) {
	if o.disabled() {
		return
	}

	now := o.clock.Now()
	window := Classify(now, deadline, o.leadTime)

	eval := Evaluation{
		Policy:   PolicySlow,
		Deadline: deadline,
		Now:      now,
		LeadTime: o.leadTime,
		Window:   window,
	}

	switch window {
	case WindowExpired:
		ms := policy.Millis(now.Sub(deadline))
		eval.Delay = millisToDuration(ms)
		o.observe(eval)

		o.sink(fmt.Sprintf("Timebomb expired after %s, slowing request by %sms",
			formatDeadline(deadline), strconv.FormatFloat(ms, 'f', -1, 64)))

		if eval.Delay > 0 {
			o.sleep(eval.Delay)
		}

	case WindowApproaching:
		o.observe(eval)
		o.sink(fmt.Sprintf("Warning: Timebomb will soon start slowing request at %s", formatDeadline(deadline)))

	default:
		o.observe(eval)
	}
}

func failAfter(o *options, deadline time.Time) error {
	if o.disabled() {
		return nil
	}

	now := o.clock.Now()
	window := Classify(now, deadline, o.leadTime)

	o.observe(Evaluation{
		Policy:   PolicyFail,
		Deadline: deadline,
		Now:      now,
		LeadTime: o.leadTime,
		Window:   window,
	})

	switch window {
	case WindowExpired:
		return &ExpiredError{Deadline: deadline}
	case WindowApproaching:
		o.sink(fmt.Sprintf("Warning: Timebomb will soon expire at %s", formatDeadline(deadline)))
	}

	return nil
}
