package tracing

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type basicProviderConfig struct {
	logger *zap.Logger
	// backing provider for the default source factory; nil means the global one.
	tracerProvider trace.TracerProvider
	sourceFactory  SourceFactory
	meterProvider  metric.MeterProvider
}

// BasicProviderOption configures a BasicProvider constructed by NewBasicProvider.
type BasicProviderOption func(*basicProviderConfig)

// WithLogger sets the logger used for lifecycle events and invariant reports.
// The default discards everything.
func WithLogger(l *zap.Logger) BasicProviderOption {
	return func(cfg *basicProviderConfig) { cfg.logger = l }
}

// WithTracerProvider sets the OpenTelemetry provider the default sources are
// obtained from. Ignored when WithSourceFactory is also given.
func WithTracerProvider(tp trace.TracerProvider) BasicProviderOption {
	return func(cfg *basicProviderConfig) { cfg.tracerProvider = tp }
}

// WithSourceFactory replaces the default OpenTelemetry-backed source factory.
func WithSourceFactory(f SourceFactory) BasicProviderOption {
	return func(cfg *basicProviderConfig) { cfg.sourceFactory = f }
}

// WithMeterProvider enables the provider's self-telemetry on mp.
func WithMeterProvider(mp metric.MeterProvider) BasicProviderOption {
	return func(cfg *basicProviderConfig) { cfg.meterProvider = mp }
}
