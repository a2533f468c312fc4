package tracing

// NoopProvider is a Provider whose tracers never record anything. It is useful
// as a default for libraries that accept a Provider but must not emit unless
// configured.
type NoopProvider struct{}

var _ Provider = NoopProvider{}

// NewNoopProvider returns a Provider that only hands out inert tracers.
func NewNoopProvider() NoopProvider { return NoopProvider{} }

// Tracer returns a new inert Tracer for the scope.
func (NoopProvider) Tracer(name string, opts ...TracerOption) *Tracer {
	cfg := applyOptions(opts)
	return newInertTracer(NewTracerKey(name, cfg), cfg)
}

// Shutdown does nothing.
func (NoopProvider) Shutdown() error { return nil }
