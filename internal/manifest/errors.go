package manifest

import "errors"

var (
	ErrInvalidManifest  = errors.New("invalid manifest")
	ErrNameRequired     = errors.New("deadline name is required")
	ErrAmbiguousDelay   = errors.New("delay_ms and delay_ms_per_day are mutually exclusive")
	ErrNegativeLeadTime = errors.New("lead_time must not be negative")
)
