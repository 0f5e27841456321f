package config

import (
	"os"
	"strconv"
	"time"

	"github.com/KasumiMercury/primind-timebomb/timebomb"
)

const (
	manifestPathEnv          = "TIMEBOMB_MANIFEST"
	leadTimeDaysEnv          = "TIMEBOMB_LEAD_TIME_DAYS"
	warnDedupMinutesEnv      = "TIMEBOMB_WARN_DEDUP_MINUTES"
	legacySunsetEnv          = "LEGACY_API_SUNSET"
	legacyDelayMsPerDayEnv   = "LEGACY_API_DELAY_MS_PER_DAY"
	auditIntervalMinutesEnv  = "TIMEBOMB_AUDIT_INTERVAL_MINUTES"
	defaultManifestPath      = "timebomb.yaml"
	defaultLeadTimeDays      = 7
	defaultWarnDedupMinutes  = 60
	defaultLegacyDelayPerDay = 100.0
	defaultAuditMinutes      = 15
)

type TimebombConfig struct {
	ManifestPath      string
	LeadTime          time.Duration
	// WarnDedupInterval of zero disables de-duplication.
	WarnDedupInterval time.Duration

	// LegacySunset is zero when the legacy route is served without a guard.
	LegacySunset        time.Time
	LegacyDelayMsPerDay float64

	// AuditInterval is how often serve records an audit; zero disables it.
	AuditInterval time.Duration
}

func LoadTimebombConfig() (*TimebombConfig, error) {
	manifestPath := os.Getenv(manifestPathEnv)
	if manifestPath == "" {
		manifestPath = defaultManifestPath
	}

	leadDays := defaultLeadTimeDays
	if v := os.Getenv(leadTimeDaysEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return nil, ErrInvalidLeadTimeDays
		}
		leadDays = parsed
	}

	dedupMinutes := defaultWarnDedupMinutes
	if v := os.Getenv(warnDedupMinutesEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return nil, ErrInvalidDedupMinutes
		}
		dedupMinutes = parsed
	}

	var sunset time.Time
	if v := os.Getenv(legacySunsetEnv); v != "" {
		parsed, err := timebomb.ParseDeadline(v)
		if err != nil {
			return nil, ErrInvalidLegacySunset
		}
		sunset = parsed
	}

	delayPerDay := defaultLegacyDelayPerDay
	if v := os.Getenv(legacyDelayMsPerDayEnv); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed < 0 {
			return nil, ErrInvalidLegacyDelay
		}
		delayPerDay = parsed
	}

	auditMinutes := defaultAuditMinutes
	if v := os.Getenv(auditIntervalMinutesEnv); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			return nil, ErrInvalidAuditInterval
		}
		auditMinutes = parsed
	}

	return &TimebombConfig{
		ManifestPath:        manifestPath,
		LeadTime:            time.Duration(leadDays) * 24 * time.Hour,
		WarnDedupInterval:   time.Duration(dedupMinutes) * time.Minute,
		LegacySunset:        sunset,
		LegacyDelayMsPerDay: delayPerDay,
		AuditInterval:       time.Duration(auditMinutes) * time.Minute,
	}, nil
}

func (c *TimebombConfig) LegacyGuarded() bool {
	return !c.LegacySunset.IsZero()
}
