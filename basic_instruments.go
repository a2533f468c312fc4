package tracing

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

const meterName = "github.com/ygrebnov/tracing"

// Instrument names recorded by BasicProvider about itself.
const (
	MetricTracersCreated  = "tracing.provider.tracers.created"
	MetricTracersActive   = "tracing.provider.tracers.active"
	MetricTracersReleased = "tracing.provider.tracers.released"
	MetricInertLookups    = "tracing.provider.lookups.inert"
)

// providerInstruments are the self-telemetry instruments of a BasicProvider.
// Hot-path cache hits are not recorded.
type providerInstruments struct {
	created  metric.Int64Counter
	active   metric.Int64UpDownCounter
	released metric.Int64Counter
	inert    metric.Int64Counter
}

// newProviderInstruments creates the instruments from mp. Any instrument that
// fails to register is replaced by its no-op equivalent and logged.
func newProviderInstruments(mp metric.MeterProvider, log *zap.Logger) providerInstruments {
	m := mp.Meter(meterName)
	var nop noop.Meter

	created, err := m.Int64Counter(MetricTracersCreated,
		metric.WithDescription("Tracers constructed on first lookup of a scope"),
		metric.WithUnit("{tracer}"))
	if err != nil {
		log.Warn("instrument registration failed", zap.String("instrument", MetricTracersCreated), zap.Error(err))
		created, _ = nop.Int64Counter(MetricTracersCreated)
	}

	active, err := m.Int64UpDownCounter(MetricTracersActive,
		metric.WithDescription("Tracers currently cached with a live source"),
		metric.WithUnit("{tracer}"))
	if err != nil {
		log.Warn("instrument registration failed", zap.String("instrument", MetricTracersActive), zap.Error(err))
		active, _ = nop.Int64UpDownCounter(MetricTracersActive)
	}

	released, err := m.Int64Counter(MetricTracersReleased,
		metric.WithDescription("Tracer sources released during shutdown"),
		metric.WithUnit("{tracer}"))
	if err != nil {
		log.Warn("instrument registration failed", zap.String("instrument", MetricTracersReleased), zap.Error(err))
		released, _ = nop.Int64Counter(MetricTracersReleased)
	}

	inert, err := m.Int64Counter(MetricInertLookups,
		metric.WithDescription("Lookups answered with an inert tracer after shutdown"),
		metric.WithUnit("{lookup}"))
	if err != nil {
		log.Warn("instrument registration failed", zap.String("instrument", MetricInertLookups), zap.Error(err))
		inert, _ = nop.Int64Counter(MetricInertLookups)
	}

	return providerInstruments{created: created, active: active, released: released, inert: inert}
}

func (i providerInstruments) tracerCreated() {
	ctx := context.Background()
	i.created.Add(ctx, 1)
	i.active.Add(ctx, 1)
}

func (i providerInstruments) tracersReleased(n int64) {
	if n == 0 {
		return
	}
	ctx := context.Background()
	i.released.Add(ctx, n)
	i.active.Add(ctx, -n)
}

func (i providerInstruments) inertLookup() {
	i.inert.Add(context.Background(), 1)
}
