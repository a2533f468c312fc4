package tracing

import (
	"context"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/embedded"
	"go.opentelemetry.io/otel/trace/noop"
)

// inertTracer serves every Start on a Tracer without a Source.
var inertTracer trace.Tracer = noop.NewTracerProvider().Tracer("")

// Tracer is the shared handle for one instrumentation scope. It implements
// trace.Tracer and forwards to its Source while the owning provider is
// running. After the provider shuts down the Source is detached and the
// Tracer becomes a no-op: Start still succeeds but nothing is recorded.
//
// Tracers are owned by their provider; callers never release them.
type Tracer struct {
	embedded.Tracer

	key    TracerKey
	cfg    TracerConfig
	source atomic.Pointer[sourceRef]
}

// sourceRef boxes the Source interface so it can live in an atomic.Pointer.
type sourceRef struct {
	s Source
}

var _ trace.Tracer = (*Tracer)(nil)

func newTracer(key TracerKey, cfg TracerConfig, src Source) *Tracer {
	t := &Tracer{key: key, cfg: cfg}
	if src != nil {
		t.source.Store(&sourceRef{s: src})
	}
	return t
}

// newInertTracer returns a Tracer that has no Source.
func newInertTracer(key TracerKey, cfg TracerConfig) *Tracer {
	return newTracer(key, cfg, nil)
}

// Start creates a span through the attached Source, or a non-recording span
// if the Tracer is inert.
func (t *Tracer) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if ref := t.source.Load(); ref != nil {
		return ref.s.Start(ctx, spanName, opts...)
	}
	return inertTracer.Start(ctx, spanName, opts...)
}

// Enabled reports whether the Tracer still has a live Source.
func (t *Tracer) Enabled() bool { return t.source.Load() != nil }

// Key returns the scope key the Tracer was created for.
func (t *Tracer) Key() TracerKey { return t.key }

// release detaches and closes the Source. Only the first call does anything;
// released is false when the Source was already gone.
func (t *Tracer) release() (released bool, err error) {
	ref := t.source.Swap(nil)
	if ref == nil {
		return false, nil
	}
	return true, ref.s.Close()
}
