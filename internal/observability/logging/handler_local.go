//go:build !gcloud

package logging

import (
	"context"
	"log/slog"
)

// gcpTraceAttrs adds nothing outside gcloud builds.
func gcpTraceAttrs(_ context.Context, _ string) []slog.Attr {
	return nil
}
