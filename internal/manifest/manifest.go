package manifest

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KasumiMercury/primind-timebomb/internal/domain"
	"github.com/KasumiMercury/primind-timebomb/timebomb"
)

// Manifest is the YAML inventory of deadlines a codebase has planted.
//
//	lead_time: 336h
//	deadlines:
//	  - name: legacy-login
//	    at: 2026-12-01
//	    policy: slow
//	    delay_ms_per_day: 10
type Manifest struct {
	// LeadTime applies to entries without their own; absent means 7 days
	// and an explicit zero disables warnings.
	LeadTime  *time.Duration `yaml:"lead_time"`
	Deadlines []Entry        `yaml:"deadlines"`
}

type Entry struct {
	Name          string         `yaml:"name"`
	At            string         `yaml:"at"`
	Policy        string         `yaml:"policy"`
	LeadTime      *time.Duration `yaml:"lead_time"`
	DelayMs       *float64       `yaml:"delay_ms"`
	DelayMsPerDay *float64       `yaml:"delay_ms_per_day"`
	Owner         string         `yaml:"owner"`
	Description   string         `yaml:"description"`
}

// LoadFromYAML reads and validates the manifest at path.
func LoadFromYAML(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	m.hydrate()

	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) hydrate() {
	if m.LeadTime == nil {
		lead := timebomb.DefaultLeadTime
		m.LeadTime = &lead
	}
	for i := range m.Deadlines {
		if m.Deadlines[i].Policy == "" {
			m.Deadlines[i].Policy = string(timebomb.PolicyWarn)
		}
	}
}

func (m *Manifest) validate() error {
	var errs []error
	seen := make(map[string]bool, len(m.Deadlines))

	if m.LeadTime != nil && *m.LeadTime < 0 {
		errs = append(errs, fmt.Errorf("lead_time: %w", ErrNegativeLeadTime))
	}

	for i, e := range m.Deadlines {
		if e.Name == "" {
			errs = append(errs, fmt.Errorf("deadlines[%d]: %w", i, ErrNameRequired))
			continue
		}
		if seen[e.Name] {
			errs = append(errs, fmt.Errorf("%s: %w", e.Name, domain.ErrDuplicateDeadline))
		}
		seen[e.Name] = true

		if _, err := timebomb.ParseDeadline(e.At); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.Name, err))
		}

		policy, err := domain.ParsePolicy(e.Policy)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w: %q", e.Name, err, e.Policy))
			continue
		}

		if policy == timebomb.PolicySlow && e.DelayMs == nil && e.DelayMsPerDay == nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.Name, domain.ErrMissingDelay))
		}
		if e.DelayMs != nil && e.DelayMsPerDay != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.Name, ErrAmbiguousDelay))
		}
		if e.LeadTime != nil && *e.LeadTime < 0 {
			errs = append(errs, fmt.Errorf("%s: %w", e.Name, ErrNegativeLeadTime))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidManifest, errors.Join(errs...))
	}
	return nil
}

// Resolve converts the entries into domain deadlines sorted by time.
func (m *Manifest) Resolve() []domain.Deadline {
	out := make([]domain.Deadline, 0, len(m.Deadlines))

	for _, e := range m.Deadlines {
		at, _ := timebomb.ParseDeadline(e.At)
		policy, _ := domain.ParsePolicy(e.Policy)

		leadTime := *m.LeadTime
		if e.LeadTime != nil {
			leadTime = *e.LeadTime
		}

		d := domain.Deadline{
			Name:        e.Name,
			At:          at,
			Policy:      policy,
			LeadTime:    leadTime,
			Owner:       e.Owner,
			Description: e.Description,
		}

		switch {
		case e.DelayMs != nil:
			d.Delay = timebomb.Fixed(*e.DelayMs)
		case e.DelayMsPerDay != nil:
			d.Delay = timebomb.Linear(*e.DelayMsPerDay)
		}

		out = append(out, d)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].At.Before(out[j].At)
	})

	return out
}

func (m *Manifest) Find(name string) (domain.Deadline, error) {
	for _, d := range m.Resolve() {
		if d.Name == name {
			return d, nil
		}
	}
	return domain.Deadline{}, domain.ErrDeadlineNotFound
}
