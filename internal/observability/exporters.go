package observability

import (
	"context"
	"errors"
	"fmt"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type (
	spanExporterFactory   func(context.Context) (sdktrace.SpanExporter, error)
	metricExporterFactory func(context.Context) (sdkmetric.Exporter, error)
)

// buildExporters creates the span exporter, then the metric exporter. When the
// metric exporter fails the span exporter is shut down before returning.
func buildExporters(
	ctx context.Context,
	newSpan spanExporterFactory,
	newMetric metricExporterFactory,
) (sdktrace.SpanExporter, sdkmetric.Exporter, error) {
	spanExporter, err := newSpan(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("create span exporter: %w", err)
	}

	metricExporter, err := newMetric(ctx)
	if err != nil {
		err = fmt.Errorf("create metric exporter: %w", err)
		if shutdownErr := spanExporter.Shutdown(ctx); shutdownErr != nil {
			err = errors.Join(err, fmt.Errorf("shutdown span exporter: %w", shutdownErr))
		}
		return nil, nil, err
	}

	return spanExporter, metricExporter, nil
}
