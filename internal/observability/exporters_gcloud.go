//go:build gcloud

package observability

import (
	"context"
	"log/slog"

	mexporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/metric"
	texporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/trace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func newExporters(ctx context.Context, cfg Config) (sdktrace.SpanExporter, sdkmetric.Exporter, error) {
	if cfg.GCPProjectID == "" {
		slog.WarnContext(ctx, "GCP project ID not configured, telemetry export disabled")
		return nil, nil, nil
	}

	return buildExporters(ctx,
		func(context.Context) (sdktrace.SpanExporter, error) {
			return texporter.New(texporter.WithProjectID(cfg.GCPProjectID))
		},
		func(context.Context) (sdkmetric.Exporter, error) {
			return mexporter.New(mexporter.WithProjectID(cfg.GCPProjectID))
		},
	)
}
