package tracing

import (
	"context"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// fakeSource counts what the provider does to it. Test-only.
type fakeSource struct {
	key      TracerKey
	cfg      TracerConfig
	starts   atomic.Int32
	closes   atomic.Int32
	closeErr error
}

func (s *fakeSource) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	s.starts.Add(1)
	return inertTracer.Start(ctx, spanName, opts...)
}

func (s *fakeSource) Close() error {
	s.closes.Add(1)
	return s.closeErr
}

// fakeFactory records every source it builds.
type fakeFactory struct {
	mu       sync.Mutex
	built    []*fakeSource
	closeErr error
}

func (f *fakeFactory) build(key TracerKey, cfg TracerConfig) Source {
	s := &fakeSource{key: key, cfg: cfg, closeErr: f.closeErr}
	f.mu.Lock()
	f.built = append(f.built, s)
	f.mu.Unlock()
	return s
}

func (f *fakeFactory) sources() []*fakeSource {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*fakeSource, len(f.built))
	copy(out, f.built)
	return out
}

func newFakeProvider(opts ...BasicProviderOption) (*BasicProvider, *fakeFactory) {
	f := &fakeFactory{}
	opts = append([]BasicProviderOption{WithSourceFactory(f.build)}, opts...)
	return NewBasicProvider(opts...), f
}

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}
