package config

import "errors"

var (
	ErrInvalidRedisDB       = errors.New("REDIS_DB must be a valid integer")
	ErrInvalidLeadTimeDays  = errors.New("TIMEBOMB_LEAD_TIME_DAYS must be a non-negative integer")
	ErrInvalidDedupMinutes  = errors.New("TIMEBOMB_WARN_DEDUP_MINUTES must be a non-negative integer")
	ErrInvalidLegacySunset  = errors.New("LEGACY_API_SUNSET must be an RFC3339 timestamp or date")
	ErrInvalidLegacyDelay   = errors.New("LEGACY_API_DELAY_MS_PER_DAY must be a non-negative number")
	ErrInvalidAuditInterval = errors.New("TIMEBOMB_AUDIT_INTERVAL_MINUTES must be a non-negative integer")
	ErrManifestPathRequired = errors.New("TIMEBOMB_MANIFEST is required")
	ErrPortRequired         = errors.New("PORT is required")
)
