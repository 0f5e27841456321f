package domain

import "errors"

var (
	ErrDeadlineNotFound  = errors.New("deadline not found")
	ErrDuplicateDeadline = errors.New("duplicate deadline name")
	ErrInvalidPolicy     = errors.New("invalid deadline policy")
	ErrMissingDelay      = errors.New("slow deadline requires a delay")
)
