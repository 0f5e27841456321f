package main

import (
	"context"
	"log/slog"
	"time"
)

// runAuditLoop records an audit immediately and then once per interval until
// ctx is cancelled. It is the only writer of window states while serving.
func runAuditLoop(ctx context.Context, interval time.Duration, audit func(context.Context) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := audit(ctx); err != nil {
			slog.WarnContext(ctx, "scheduled deadline audit failed",
				slog.String("event", "timebomb.audit.fail"),
				slog.String("error", err.Error()),
			)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
