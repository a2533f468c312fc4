package tracing

import (
	"context"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// otelSource is the default Source: a tracer obtained from an OpenTelemetry
// TracerProvider for one scope. Closing it makes later Starts inert; spans
// already started are left to the SDK.
type otelSource struct {
	tracer trace.Tracer
	closed atomic.Bool
}

// NewOTelSourceFactory returns a SourceFactory that obtains tracers from tp.
// When tp is nil the global provider (otel.GetTracerProvider) is resolved each
// time a source is built.
func NewOTelSourceFactory(tp trace.TracerProvider) SourceFactory {
	return func(key TracerKey, cfg TracerConfig) Source {
		provider := tp
		if provider == nil {
			provider = otel.GetTracerProvider()
		}
		return newOTelSource(provider, key, cfg)
	}
}

func newOTelSource(tp trace.TracerProvider, key TracerKey, cfg TracerConfig) *otelSource {
	var opts []trace.TracerOption
	if key.Versioned {
		opts = append(opts, trace.WithInstrumentationVersion(key.Version))
	}
	if cfg.SchemaURL != "" {
		opts = append(opts, trace.WithSchemaURL(cfg.SchemaURL))
	}
	if len(cfg.Attributes) > 0 {
		opts = append(opts, trace.WithInstrumentationAttributes(cfg.Attributes...))
	}
	return &otelSource{tracer: tp.Tracer(key.Name, opts...)}
}

func (s *otelSource) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if s.closed.Load() {
		return inertTracer.Start(ctx, spanName, opts...)
	}
	return s.tracer.Start(ctx, spanName, opts...)
}

// Close is idempotent.
func (s *otelSource) Close() error {
	s.closed.Store(true)
	return nil
}
