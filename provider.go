package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Provider hands out one shared Tracer per instrumentation scope.
// Implementations must be safe for concurrent use.
//
// Once Shutdown has been called, Tracer keeps working but only returns inert
// tracers; it never recreates released state.
type Provider interface {
	Tracer(name string, opts ...TracerOption) *Tracer
	Shutdown() error
}

// Source is the emitter resource wrapped by a Tracer. A Tracer owns exactly
// one Source for as long as its provider is running.
//
// Close must be idempotent: calling it more than once is a no-op.
type Source interface {
	Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span)
	Close() error
}

// SourceFactory builds the Source for a newly seen scope. It is called at most
// once per key while the provider is running, under the provider's cache lock,
// so it must not block on I/O or call back into the provider.
type SourceFactory func(key TracerKey, cfg TracerConfig) Source

// TracerConfig carries the scope metadata supplied on first lookup.
// Only Version/Versioned are part of the TracerKey; the rest is advisory.
type TracerConfig struct {
	Version   string
	Versioned bool
	SchemaURL string
	// Attributes describe the instrumentation scope itself (bounded cardinality).
	Attributes []attribute.KeyValue
}

// TracerOption mutates TracerConfig.
type TracerOption func(*TracerConfig)

// WithVersion sets the instrumentation scope version. WithVersion("") yields a
// different scope than omitting the option.
func WithVersion(version string) TracerOption {
	return func(c *TracerConfig) {
		c.Version = version
		c.Versioned = true
	}
}

// WithSchemaURL sets the schema URL reported for the scope.
func WithSchemaURL(url string) TracerOption {
	return func(c *TracerConfig) { c.SchemaURL = url }
}

// WithAttributes attaches scope attributes. The slice is copied.
func WithAttributes(attrs ...attribute.KeyValue) TracerOption {
	return func(c *TracerConfig) {
		if len(attrs) == 0 {
			return
		}
		c.Attributes = append(c.Attributes, attrs...)
	}
}

// applyOptions builds TracerConfig from options.
func applyOptions(opts []TracerOption) TracerConfig {
	var cfg TracerConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return cfg
}

// copyConfig makes a defensive copy of TracerConfig (copies Attributes).
func copyConfig(in TracerConfig) TracerConfig {
	out := in
	if len(in.Attributes) > 0 {
		out.Attributes = make([]attribute.KeyValue, len(in.Attributes))
		copy(out.Attributes, in.Attributes)
	} else {
		out.Attributes = nil
	}
	return out
}
