package config

import (
	"errors"
	"fmt"
)

func ValidateForRun(cfg *Config) error {
	var errs []error

	if cfg.Port == "" {
		errs = append(errs, ErrPortRequired)
	}
	if cfg.Timebomb == nil || cfg.Timebomb.ManifestPath == "" {
		errs = append(errs, ErrManifestPathRequired)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %w", errors.Join(errs...))
	}

	return nil
}
