package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/trace"
)

type Environment string

const (
	EnvDev     Environment = "dev"
	EnvStaging Environment = "staging"
	EnvProd    Environment = "prod"
)

// Module tags log entries with the component that produced them.
type Module string

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type Config struct {
	Service      ServiceInfo
	Environment  Environment
	Level        slog.Level
	Module       Module
	GCPProjectID string
	// Writer defaults to os.Stdout.
	Writer io.Writer
}

// NewLogger builds a JSON logger for prod/staging and a text logger otherwise.
// Entries logged with a context carry the active trace and span ids.
func NewLogger(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}

	var base slog.Handler
	switch cfg.Environment {
	case EnvProd, EnvStaging:
		base = slog.NewJSONHandler(w, opts)
	default:
		base = slog.NewTextHandler(w, opts)
	}

	attrs := []slog.Attr{
		slog.String("service", cfg.Service.Name),
		slog.String("env", string(cfg.Environment)),
	}
	if cfg.Service.Version != "" {
		attrs = append(attrs, slog.String("version", cfg.Service.Version))
	}
	if cfg.Service.Revision != "" {
		attrs = append(attrs, slog.String("revision", cfg.Service.Revision))
	}
	if cfg.Module != "" {
		attrs = append(attrs, slog.String("module", string(cfg.Module)))
	}

	return slog.New(&contextHandler{
		Handler:   base.WithAttrs(attrs),
		projectID: cfg.GCPProjectID,
	})
}

// WithModule returns a logger tagged with a different module.
func WithModule(logger *slog.Logger, module Module) *slog.Logger {
	return logger.With(slog.String("module", string(module)))
}

type contextHandler struct {
	slog.Handler
	projectID string
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
		r.AddAttrs(gcpTraceAttrs(ctx, h.projectID)...)
	}
	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs), projectID: h.projectID}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name), projectID: h.projectID}
}
