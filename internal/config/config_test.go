package config

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "ENV", "REDIS_ADDR", "REDIS_DB",
		manifestPathEnv, leadTimeDaysEnv, warnDedupMinutesEnv, legacySunsetEnv, legacyDelayMsPerDayEnv,
		auditIntervalMinutesEnv,
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.Redis.Enabled() {
		t.Error("redis should be disabled without REDIS_ADDR")
	}
	if cfg.Timebomb.ManifestPath != defaultManifestPath {
		t.Errorf("ManifestPath = %q", cfg.Timebomb.ManifestPath)
	}
	if cfg.Timebomb.LeadTime != 7*24*time.Hour {
		t.Errorf("LeadTime = %v", cfg.Timebomb.LeadTime)
	}
	if cfg.Timebomb.WarnDedupInterval != time.Hour {
		t.Errorf("WarnDedupInterval = %v", cfg.Timebomb.WarnDedupInterval)
	}
	if cfg.Timebomb.LegacyGuarded() {
		t.Error("legacy route should not be guarded by default")
	}
	if cfg.Timebomb.AuditInterval != 15*time.Minute {
		t.Errorf("AuditInterval = %v", cfg.Timebomb.AuditInterval)
	}
	if err := ValidateForRun(cfg); err != nil {
		t.Errorf("ValidateForRun() = %v", err)
	}
}

func TestLoadTimebombConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr error
		check   func(t *testing.T, cfg *TimebombConfig)
	}{
		{
			name: "overrides",
			env: map[string]string{
				leadTimeDaysEnv:         "14",
				warnDedupMinutesEnv:     "0",
				legacySunsetEnv:         "2026-12-01",
				legacyDelayMsPerDayEnv:  "25.5",
				auditIntervalMinutesEnv: "0",
			},
			check: func(t *testing.T, cfg *TimebombConfig) {
				if cfg.LeadTime != 14*24*time.Hour {
					t.Errorf("LeadTime = %v", cfg.LeadTime)
				}
				if cfg.WarnDedupInterval != 0 {
					t.Errorf("WarnDedupInterval = %v", cfg.WarnDedupInterval)
				}
				if !cfg.LegacySunset.Equal(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)) {
					t.Errorf("LegacySunset = %v", cfg.LegacySunset)
				}
				if cfg.LegacyDelayMsPerDay != 25.5 {
					t.Errorf("LegacyDelayMsPerDay = %v", cfg.LegacyDelayMsPerDay)
				}
				if cfg.AuditInterval != 0 {
					t.Errorf("AuditInterval = %v", cfg.AuditInterval)
				}
			},
		},
		{name: "negative lead time", env: map[string]string{leadTimeDaysEnv: "-1"}, wantErr: ErrInvalidLeadTimeDays},
		{name: "bad lead time", env: map[string]string{leadTimeDaysEnv: "week"}, wantErr: ErrInvalidLeadTimeDays},
		{name: "bad dedup", env: map[string]string{warnDedupMinutesEnv: "x"}, wantErr: ErrInvalidDedupMinutes},
		{name: "bad sunset", env: map[string]string{legacySunsetEnv: "soon"}, wantErr: ErrInvalidLegacySunset},
		{name: "bad delay", env: map[string]string{legacyDelayMsPerDayEnv: "-3"}, wantErr: ErrInvalidLegacyDelay},
		{name: "bad audit interval", env: map[string]string{auditIntervalMinutesEnv: "-5"}, wantErr: ErrInvalidAuditInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{leadTimeDaysEnv, warnDedupMinutesEnv, legacySunsetEnv, legacyDelayMsPerDayEnv, auditIntervalMinutesEnv} {
				t.Setenv(key, tt.env[key])
			}

			cfg, err := LoadTimebombConfig()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadRedisConfig_InvalidDB(t *testing.T) {
	t.Setenv(redisDBEnv, "one")

	if _, err := LoadRedisConfig(); !errors.Is(err, ErrInvalidRedisDB) {
		t.Errorf("error = %v, want ErrInvalidRedisDB", err)
	}
}

func TestValidateForRun(t *testing.T) {
	err := ValidateForRun(&Config{})

	if !errors.Is(err, ErrPortRequired) || !errors.Is(err, ErrManifestPathRequired) {
		t.Errorf("error = %v, want both port and manifest errors", err)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for in, want := range tests {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
