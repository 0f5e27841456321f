package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-timebomb/internal/domain"
	"github.com/KasumiMercury/primind-timebomb/timebomb"
)

const (
	windowKeyPrefix = "timebomb:window:"

	windowStateTTL = 30 * 24 * time.Hour // drops deadlines removed from the manifest
)

type windowRecord struct {
	Name       string    `json:"name"`
	Deadline   time.Time `json:"deadline"`
	Window     string    `json:"window"`
	ObservedAt time.Time `json:"observed_at"`
}

type windowRepository struct {
	client redis.Cmdable
}

func NewWindowRepository(client redis.Cmdable) domain.WindowRepository {
	return &windowRepository{
		client: client,
	}
}

func (r *windowRepository) GetWindowStates(ctx context.Context, names []string) (map[string]domain.WindowState, error) {
	states := make(map[string]domain.WindowState, len(names))
	if len(names) == 0 {
		return states, nil
	}

	keys := make([]string, 0, len(names))
	for _, name := range names {
		keys = append(keys, windowKeyPrefix+name)
	}

	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return states, nil
		}
		return nil, err
	}

	for i, val := range vals {
		if val == nil {
			continue
		}

		raw, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected type for %s", ErrInvalidWindowData, keys[i])
		}

		var record windowRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidWindowData, keys[i], err)
		}

		states[record.Name] = domain.WindowState{
			Name:       record.Name,
			Deadline:   record.Deadline,
			Window:     timebomb.Window(record.Window),
			ObservedAt: record.ObservedAt,
		}
	}

	return states, nil
}

func (r *windowRepository) SaveWindowStates(ctx context.Context, states []domain.WindowState) error {
	if len(states) == 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	for _, state := range states {
		data, err := json.Marshal(windowRecord{
			Name:       state.Name,
			Deadline:   state.Deadline,
			Window:     state.Window.String(),
			ObservedAt: state.ObservedAt,
		})
		if err != nil {
			return err
		}
		pipe.Set(ctx, windowKeyPrefix+state.Name, data, windowStateTTL)
	}

	_, err := pipe.Exec(ctx)
	return err
}
