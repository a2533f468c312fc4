package tracing

import (
	"fmt"
	"sync"
	"sync/atomic"

	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// BasicProvider is the reference Provider. It creates one Tracer per scope key
// on first lookup, hands the same instance to every later caller, and on
// Shutdown releases every Tracer's Source exactly once.
//
// Lookups of cached scopes take no lock. First lookups of a scope and
// Shutdown serialize on a single mutex owned by the cache, so a Tracer is
// never inserted into a cache that Shutdown has already detached.
type BasicProvider struct {
	cfg     *basicProviderConfig
	logger  *zap.Logger
	factory SourceFactory
	metrics providerInstruments

	// cache is nil once Shutdown has started and is never restored.
	cache atomic.Pointer[tracerCache]

	invariantReports atomic.Int32
}

// tracerCache holds the live tracers. mu guards insertion and teardown only;
// reads go through tracers directly.
type tracerCache struct {
	mu      sync.Mutex
	tracers sync.Map // map[TracerKey]*Tracer
}

var _ Provider = (*BasicProvider)(nil)

// NewBasicProvider constructs a running BasicProvider.
// Accepts optional functional options to customize behavior.
func NewBasicProvider(opts ...BasicProviderOption) *BasicProvider {
	cfg := &basicProviderConfig{}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	l := cfg.logger
	if l == nil {
		l = newNoopLogger()
	}
	f := cfg.sourceFactory
	if f == nil {
		f = NewOTelSourceFactory(cfg.tracerProvider)
	}
	mp := cfg.meterProvider
	if mp == nil {
		mp = metricnoop.NewMeterProvider()
	}

	p := &BasicProvider{
		cfg:     cfg,
		logger:  l,
		factory: f,
		metrics: newProviderInstruments(mp, l),
	}
	p.cache.Store(&tracerCache{})
	return p
}

// Tracer returns the Tracer for the scope identified by name and the version
// option, creating it on first use. It never returns nil. After Shutdown it
// returns a new inert Tracer on every call.
//
// Options other than WithVersion only take effect on the call that creates
// the Tracer.
func (p *BasicProvider) Tracer(name string, opts ...TracerOption) *Tracer {
	cfg := applyOptions(opts)
	key := NewTracerKey(name, cfg)

	c := p.cache.Load()
	if c == nil {
		p.metrics.inertLookup()
		return newInertTracer(key, cfg)
	}

	// fast path: no lock
	if t, ok := p.load(c, key); ok {
		return t
	}
	return p.getOrCreate(c, key, cfg)
}

// load reads a cached Tracer without locking.
func (p *BasicProvider) load(c *tracerCache, key TracerKey) (*Tracer, bool) {
	v, ok := c.tracers.Load(key)
	if !ok {
		return nil, false
	}
	t, ok := v.(*Tracer)
	if !ok {
		p.reportInvariantViolation("tracer_type", key)
		return nil, false
	}
	return t, true
}

// getOrCreate is the slow path. It takes the cache lock, re-checks both the
// provider state and the cache, then builds and stores the Tracer.
func (p *BasicProvider) getOrCreate(c *tracerCache, key TracerKey, cfg TracerConfig) *Tracer {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Shutdown may have won the race since the fast path read.
	if p.cache.Load() != c {
		p.metrics.inertLookup()
		return newInertTracer(key, cfg)
	}
	if t, ok := p.load(c, key); ok {
		return t
	}

	src := p.factory(key, copyConfig(cfg))
	if src == nil {
		p.reportInvariantViolation("nil_source", key)
		return newInertTracer(key, cfg)
	}
	t := newTracer(key, cfg, src)

	if prev, loaded := c.tracers.LoadOrStore(key, t); loaded {
		if existing, ok := prev.(*Tracer); ok {
			// first writer wins; drop what we just built
			p.reportInvariantViolation("duplicate_tracer", key)
			if _, err := t.release(); err != nil {
				p.logger.Warn("closing discarded source failed", append(scopeFields(key), zap.Error(err))...)
			}
			return existing
		}
		p.reportInvariantViolation("tracer_type", key)
		c.tracers.Store(key, t)
	}

	p.metrics.tracerCreated()
	p.logger.Debug("tracer created", scopeFields(key)...)
	return t
}

// Shutdown detaches the cache and releases every cached Tracer's Source.
// Only the first call does any work; later calls return nil immediately.
// Errors from Source.Close are combined and returned after every Tracer has
// been released.
func (p *BasicProvider) Shutdown() error {
	c := p.cache.Load()
	if c == nil || !p.cache.CompareAndSwap(c, nil) {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var (
		errs     error
		released int64
	)
	c.tracers.Range(func(k, v any) bool {
		c.tracers.Delete(k)
		t, ok := v.(*Tracer)
		if !ok {
			if key, isKey := k.(TracerKey); isKey {
				p.reportInvariantViolation("tracer_type", key)
			}
			return true
		}
		rel, err := t.release()
		if !rel {
			p.reportInvariantViolation("tracer_released_twice", t.key)
			return true
		}
		released++
		if err != nil {
			p.logger.Warn("closing source failed", append(scopeFields(t.key), zap.Error(err))...)
			errs = multierr.Append(errs, fmt.Errorf("close tracer %s: %w", t.key, err))
		}
		return true
	})

	p.metrics.tracersReleased(released)
	p.logger.Info("tracer provider shut down", zap.Int64("released", released))
	return errs
}

// IsShutdown reports whether Shutdown has been called.
func (p *BasicProvider) IsShutdown() bool { return p.cache.Load() == nil }

// reportInvariantViolation reports internal states that must never occur,
// such as two tracers for one key or a tracer released twice. In release
// builds it logs up to 10 times per provider; in debug builds (or under the
// race detector) it panics to catch bugs early.
func (p *BasicProvider) reportInvariantViolation(kind string, key TracerKey) {
	const maxReports = 10

	msg := "[tracing] invariant violation: " + kind + " for " + key.String()

	// In debug builds, fail fast.
	if isDebugBuild() {
		panic(msg)
	}

	if p.invariantReports.Add(1) > maxReports {
		return
	}
	p.logger.Warn(msg, zap.String("kind", kind), zap.Stringer("scope", key))
}

// isDebugBuild reports whether we're in a "debug" or "race" build.
func isDebugBuild() bool {
	return raceBuild || debugBuild
}
