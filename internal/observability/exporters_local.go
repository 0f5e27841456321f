//go:build !gcloud

package observability

import (
	"context"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// newExporters ships telemetry over OTLP/HTTP when OTEL_EXPORTER_OTLP_ENDPOINT
// is set and disables it otherwise.
func newExporters(ctx context.Context, _ Config) (sdktrace.SpanExporter, sdkmetric.Exporter, error) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		slog.DebugContext(ctx, "OTEL_EXPORTER_OTLP_ENDPOINT not set, telemetry export disabled")
		return nil, nil, nil
	}

	return buildExporters(ctx,
		func(ctx context.Context) (sdktrace.SpanExporter, error) {
			return otlptracehttp.New(ctx)
		},
		func(ctx context.Context) (sdkmetric.Exporter, error) {
			return otlpmetrichttp.New(ctx)
		},
	)
}
