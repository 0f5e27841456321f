package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-timebomb/internal/domain"
	"github.com/KasumiMercury/primind-timebomb/internal/observability/metrics"
	"github.com/KasumiMercury/primind-timebomb/internal/observability/tracing"
	"github.com/KasumiMercury/primind-timebomb/timebomb"
)

type Service struct {
	clock    timebomb.Clock
	recorder domain.EvaluationRecorder
	windows  domain.WindowRepository
	metrics  *metrics.GuardMetrics
	newRunID func() string
}

func NewService(
	clock timebomb.Clock,
	recorder domain.EvaluationRecorder,
	windows domain.WindowRepository,
	guardMetrics *metrics.GuardMetrics,
) *Service {
	if clock == nil {
		clock = timebomb.SystemClock{}
	}
	return &Service{
		clock:    clock,
		recorder: recorder,
		windows:  windows,
		metrics:  guardMetrics,
		newRunID: uuid.NewString,
	}
}

// Evaluate classifies every deadline against a single clock reading. Nothing
// sleeps or fails here; slow deadlines report the delay they would impose.
// Recorder and window store failures are logged and do not fail the audit.
func (s *Service) Evaluate(ctx context.Context, deadlines []domain.Deadline) (*Report, error) {
	return s.evaluate(ctx, deadlines, true)
}

// Preview classifies like Evaluate and reports transitions against the last
// stored audit, but writes nothing: no window states, evaluation records or
// metrics. Read paths such as the HTTP API use it so polling leaves the audit
// history untouched.
func (s *Service) Preview(ctx context.Context, deadlines []domain.Deadline) (*Report, error) {
	return s.evaluate(ctx, deadlines, false)
}

func (s *Service) evaluate(ctx context.Context, deadlines []domain.Deadline, persist bool) (*Report, error) {
	start := time.Now()
	now := s.clock.Now()

	ctx, span := tracing.StartAuditSpan(ctx, len(deadlines), now)
	defer span.End()

	report := &Report{
		RunID:       s.newRunID(),
		EvaluatedAt: now,
		Items:       make([]Item, 0, len(deadlines)),
	}
	records := make([]domain.EvaluationRecord, 0, len(deadlines))
	states := make([]domain.WindowState, 0, len(deadlines))
	previous := s.previousWindows(ctx, deadlines)

	for _, d := range deadlines {
		window := d.Window(now)
		delay := d.WouldDelay(now)

		item := Item{
			Name:        d.Name,
			Owner:       d.Owner,
			Description: d.Description,
			Policy:      d.Policy,
			Window:      window,
			Deadline:    d.At,
			LeadTime:    d.LeadTime,
			Remaining:   d.Remaining(now),
			DelayMs:     float64(delay) / float64(time.Millisecond),
		}

		// A stored state for a different instant belongs to an edited entry.
		if prev, ok := previous[d.Name]; ok && prev.Deadline.Equal(d.At) {
			item.PreviousWindow = prev.Window
			item.Transitioned = prev.Window != window
		}
		if item.Transitioned {
			report.TransitionCount++
		}
		if item.Transitioned && persist {
			slog.InfoContext(ctx, "deadline window changed",
				slog.String("deadline", d.Name),
				slog.String("from", item.PreviousWindow.String()),
				slog.String("to", window.String()),
			)
		}

		switch window {
		case timebomb.WindowExpired:
			report.ExpiredCount++
			if !persist {
				break
			}
			slog.WarnContext(ctx, "deadline expired",
				slog.String("deadline", d.Name),
				slog.String("policy", d.Policy.String()),
				slog.String("owner", d.Owner),
				slog.Time("at", d.At),
			)
		case timebomb.WindowApproaching:
			report.ApproachingCount++
			if !persist {
				break
			}
			slog.InfoContext(ctx, "deadline approaching",
				slog.String("deadline", d.Name),
				slog.String("policy", d.Policy.String()),
				slog.Duration("remaining", item.Remaining),
			)
		default:
			report.DormantCount++
		}

		if persist && s.metrics != nil {
			s.metrics.RecordEvaluation(ctx, d.Policy.String(), window.String())
			s.metrics.RecordDeadlineRemaining(ctx, d.Name, d.Policy.String(), item.Remaining)
		}

		report.Items = append(report.Items, item)
		records = append(records, domain.EvaluationRecord{
			RunID:       report.RunID,
			Name:        d.Name,
			Owner:       d.Owner,
			Policy:      d.Policy.String(),
			Window:      window.String(),
			Deadline:    d.At,
			EvaluatedAt: now,
			Remaining:   item.Remaining,
			DelayMs:     item.DelayMs,
		})
		states = append(states, domain.WindowState{
			Name:       d.Name,
			Deadline:   d.At,
			Window:     window,
			ObservedAt: now,
		})
	}

	if !persist {
		tracing.RecordAuditResult(span, report.ExpiredCount, report.ApproachingCount, report.DormantCount, nil)
		return report, nil
	}

	if s.windows != nil {
		if err := s.windows.SaveWindowStates(ctx, states); err != nil {
			slog.WarnContext(ctx, "failed to save window states",
				slog.String("run_id", report.RunID),
				slog.String("error", err.Error()),
			)
		}
	}

	if s.recorder != nil {
		if err := s.recorder.RecordEvaluations(ctx, records); err != nil {
			slog.WarnContext(ctx, "failed to record evaluations",
				slog.String("run_id", report.RunID),
				slog.String("error", err.Error()),
			)
		}
	}

	if s.metrics != nil {
		s.metrics.RecordAuditDuration(ctx, time.Since(start))
	}

	tracing.RecordAuditResult(span, report.ExpiredCount, report.ApproachingCount, report.DormantCount, nil)

	slog.DebugContext(ctx, "deadline audit completed",
		slog.String("run_id", report.RunID),
		slog.Int("expired_count", report.ExpiredCount),
		slog.Int("approaching_count", report.ApproachingCount),
		slog.Int("dormant_count", report.DormantCount),
	)

	return report, nil
}

func (s *Service) previousWindows(ctx context.Context, deadlines []domain.Deadline) map[string]domain.WindowState {
	if s.windows == nil {
		return nil
	}

	names := make([]string, 0, len(deadlines))
	for _, d := range deadlines {
		names = append(names, d.Name)
	}

	states, err := s.windows.GetWindowStates(ctx, names)
	if err != nil {
		slog.WarnContext(ctx, "failed to load window states",
			slog.String("error", err.Error()),
		)
		return nil
	}

	return states
}

// EvaluateOne audits a single deadline.
func (s *Service) EvaluateOne(ctx context.Context, d domain.Deadline) (Item, error) {
	report, err := s.Evaluate(ctx, []domain.Deadline{d})
	if err != nil {
		return Item{}, err
	}
	return report.Items[0], nil
}

// PreviewOne is the read-only counterpart of EvaluateOne.
func (s *Service) PreviewOne(ctx context.Context, d domain.Deadline) (Item, error) {
	report, err := s.Preview(ctx, []domain.Deadline{d})
	if err != nil {
		return Item{}, err
	}
	return report.Items[0], nil
}
