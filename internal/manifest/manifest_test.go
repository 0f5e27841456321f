package manifest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-timebomb/internal/domain"
	"github.com/KasumiMercury/primind-timebomb/timebomb"
)

const validManifest = `
lead_time: 336h
deadlines:
  - name: v1-search
    at: 2027-01-15T00:00:00Z
    policy: fail
    owner: search-team
    description: remove the v1 search endpoint
  - name: legacy-login
    at: 2026-12-01
    policy: slow
    delay_ms_per_day: 10
    lead_time: 72h
  - name: old-flag
    at: "2026-11-01 09:00:00"
    delay_ms: 5
  - name: fixed-slow
    at: 2026-10-01
    policy: slow
    delay_ms: 250
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(validManifest))
	require.NoError(t, err)

	require.NotNil(t, m.LeadTime)
	assert.Equal(t, 336*time.Hour, *m.LeadTime)
	require.Len(t, m.Deadlines, 4)
	assert.Equal(t, "warn", m.Deadlines[2].Policy, "policy defaults to warn")

	deadlines := m.Resolve()
	require.Len(t, deadlines, 4)

	names := make([]string, 0, len(deadlines))
	for _, d := range deadlines {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"fixed-slow", "old-flag", "legacy-login", "v1-search"}, names, "sorted by deadline")

	fixed := deadlines[0]
	assert.Equal(t, timebomb.PolicySlow, fixed.Policy)
	assert.Equal(t, timebomb.Fixed(250), fixed.Delay)
	assert.Equal(t, 336*time.Hour, fixed.LeadTime)

	legacy := deadlines[2]
	assert.Equal(t, 72*time.Hour, legacy.LeadTime)
	assert.True(t, legacy.At.Equal(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)))
	require.NotNil(t, legacy.Delay)
	assert.Equal(t, 20*time.Millisecond, legacy.Delay.Delay(48*time.Hour))

	search := deadlines[3]
	assert.Equal(t, timebomb.PolicyFail, search.Policy)
	assert.Equal(t, "search-team", search.Owner)
	assert.Nil(t, search.Delay)
}

func TestParse_DefaultLeadTime(t *testing.T) {
	m, err := Parse([]byte("deadlines:\n  - name: a\n    at: 2026-01-01\n"))
	require.NoError(t, err)

	require.NotNil(t, m.LeadTime)
	assert.Equal(t, timebomb.DefaultLeadTime, *m.LeadTime)
	assert.Equal(t, timebomb.DefaultLeadTime, m.Resolve()[0].LeadTime)
}

func TestParse_ZeroManifestLeadTime(t *testing.T) {
	m, err := Parse([]byte(`lead_time: 0s
deadlines:
  - name: a
    at: 2026-01-01
  - name: b
    at: 2026-01-02
    lead_time: 24h
`))
	require.NoError(t, err)

	require.NotNil(t, m.LeadTime)
	assert.Equal(t, time.Duration(0), *m.LeadTime)

	deadlines := m.Resolve()
	assert.Equal(t, time.Duration(0), deadlines[0].LeadTime)
	assert.Equal(t, 24*time.Hour, deadlines[1].LeadTime)

	// zero lead time never approaches, even one second before the deadline
	assert.Equal(t, timebomb.WindowDormant, deadlines[0].Window(deadlines[0].At.Add(-time.Second)))
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "malformed yaml",
			yaml:    "deadlines: [",
			wantErr: ErrInvalidManifest,
		},
		{
			name:    "missing name",
			yaml:    "deadlines:\n  - at: 2026-01-01\n",
			wantErr: ErrNameRequired,
		},
		{
			name:    "duplicate name",
			yaml:    "deadlines:\n  - name: a\n    at: 2026-01-01\n  - name: a\n    at: 2026-02-01\n",
			wantErr: domain.ErrDuplicateDeadline,
		},
		{
			name:    "bad time",
			yaml:    "deadlines:\n  - name: a\n    at: someday\n",
			wantErr: timebomb.ErrInvalidDeadline,
		},
		{
			name:    "unknown policy",
			yaml:    "deadlines:\n  - name: a\n    at: 2026-01-01\n    policy: explode\n",
			wantErr: domain.ErrInvalidPolicy,
		},
		{
			name:    "slow without delay",
			yaml:    "deadlines:\n  - name: a\n    at: 2026-01-01\n    policy: slow\n",
			wantErr: domain.ErrMissingDelay,
		},
		{
			name:    "both delays",
			yaml:    "deadlines:\n  - name: a\n    at: 2026-01-01\n    policy: slow\n    delay_ms: 1\n    delay_ms_per_day: 1\n",
			wantErr: ErrAmbiguousDelay,
		},
		{
			name:    "negative lead time",
			yaml:    "deadlines:\n  - name: a\n    at: 2026-01-01\n    lead_time: -1h\n",
			wantErr: ErrNegativeLeadTime,
		},
		{
			name:    "negative manifest lead time",
			yaml:    "lead_time: -1h\ndeadlines:\n  - name: a\n    at: 2026-01-01\n",
			wantErr: ErrNegativeLeadTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidManifest)
		})
	}
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timebomb.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validManifest), 0o600))

	m, err := LoadFromYAML(path)
	require.NoError(t, err)
	assert.Len(t, m.Deadlines, 4)

	_, err = LoadFromYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	m, err := Parse([]byte(validManifest))
	require.NoError(t, err)

	d, err := m.Find("legacy-login")
	require.NoError(t, err)
	assert.Equal(t, timebomb.PolicySlow, d.Policy)

	_, err = m.Find("nope")
	assert.ErrorIs(t, err, domain.ErrDeadlineNotFound)
}
