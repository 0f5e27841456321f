package domain

import (
	"context"
	"time"

	"github.com/KasumiMercury/primind-timebomb/timebomb"
)

// WindowState is the window a deadline was last observed in.
type WindowState struct {
	Name       string
	Deadline   time.Time
	Window     timebomb.Window
	ObservedAt time.Time
}

//go:generate mockgen -source=window_repository.go -destination=mock_window_repository.go -package=domain

type WindowRepository interface {
	// GetWindowStates returns the stored states keyed by name. Names without a
	// stored state are absent from the map.
	GetWindowStates(ctx context.Context, names []string) (map[string]WindowState, error)
	SaveWindowStates(ctx context.Context, states []WindowState) error
}
