/*
Package tracing provides a concurrency-safe registry of OpenTelemetry tracers keyed by
instrumentation scope, with an irreversible shutdown.

# Overview

The library is organized around two main interfaces:

1. Provider: creation and lifecycle of tracers. Providers must be safe for concurrent use
by multiple goroutines, create tracers lazily, and deduplicate by scope key (name, version).

	type Provider interface {
	  Tracer(name string, opts ...TracerOption) *Tracer
	  Shutdown() error
	}

2. Inspector: read-only access to cached tracers and the metadata they were created with.

	type Inspector interface {
	  TracerWithMeta(key TracerKey) (*Tracer, TracerConfig, bool)
	  ListTracers() []TracerEntry
	}

A *Tracer implements trace.Tracer from go.opentelemetry.io/otel/trace, so it can be passed to
any code that expects one.

# Reference implementation

BasicProvider implements both Provider and Inspector. Tracers live in a sync.Map owned by a
cache object that the provider references through an atomic pointer. Each Tracer wraps one
Source (by default a tracer obtained from an OpenTelemetry TracerProvider).

How it works (high level)

 1. Fast path: load the cache pointer; if it is nil the provider is shut down and a new inert
    Tracer is returned. Otherwise look the key up in the sync.Map and return the hit.
 2. Slow path: lock the cache mutex; re-check that the cache is still attached and that the key
    is still missing; build the Source; store the Tracer.
 3. Shutdown: compare-and-swap the cache pointer to nil. The winner locks the same mutex,
    detaches and closes every Tracer's Source, and empties the cache. Losers return at once.
 4. The provider reports internal states that must never happen (two tracers for one key,
    a tracer released twice). In debug and race builds these panic; otherwise they are
    logged and the provider carries on.

Because step 2 re-checks the cache pointer under the mutex, a lookup that races with Shutdown
either inserts before teardown (and is released by it) or sees the provider shut down.

Examples

	p := tracing.NewBasicProvider(tracing.WithTracerProvider(sdkProvider))
	tr := p.Tracer("github.com/acme/billing", tracing.WithVersion("1.4.0"))
	ctx, span := tr.Start(ctx, "charge")
	defer span.End()

	// on application exit
	_ = p.Shutdown()

	// still safe: returns an inert tracer
	_, span = p.Tracer("github.com/acme/billing").Start(ctx, "late")
	span.End()

A process-wide provider is available through Default. It is created once and never
recreated, including after Shutdown.

# Build and test

- Run unit tests:

	go test ./...

- Run with the race detector (enables stricter invariant behavior):

	go test -race ./...

- Enable debug build tag (debug invariants enabled):

	go test -tags=debug ./...

# Notes

- The version is the only option that is part of the key. WithVersion("") and no version at
all are different scopes.

- TracerConfig values returned by Inspector methods are defensive copies.
*/
package tracing
