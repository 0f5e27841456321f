package timebomb

import (
	"errors"
	"fmt"
	"time"
)

// ErrExpired matches any *ExpiredError via errors.Is.
var ErrExpired = errors.New("timebomb expired")

// ExpiredError is returned by FailAfter once its deadline has passed.
type ExpiredError struct {
	Deadline time.Time
}

func (e *ExpiredError) Error() string {
	return fmt.Sprintf("Timebomb expired after %s", formatDeadline(e.Deadline))
}

func (e *ExpiredError) Is(target error) bool {
	return target == ErrExpired
}
