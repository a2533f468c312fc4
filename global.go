package tracing

import "sync"

var (
	defaultProvider *BasicProvider
	defaultOnce     sync.Once
)

// Default returns the process-wide BasicProvider, creating it on first call.
// It is created at most once per process; once shut down it stays shut down
// and keeps returning inert tracers.
func Default() *BasicProvider {
	defaultOnce.Do(func() {
		defaultProvider = NewBasicProvider()
	})
	return defaultProvider
}

// InitDefault creates the process-wide provider with opts. Only the first of
// InitDefault or Default takes effect; InitDefault reports whether it did.
func InitDefault(opts ...BasicProviderOption) bool {
	initialized := false
	defaultOnce.Do(func() {
		defaultProvider = NewBasicProvider(opts...)
		initialized = true
	})
	return initialized
}
