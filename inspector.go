package tracing

// Inspector provides an optional capability of tracer inspection for admin
// and debug tooling. Implementations should return defensive copies of
// configs.
// Snapshot semantics: best-effort at call time.
// Methods must be safe for concurrent use.
type Inspector interface {
	// TracerWithMeta returns the cached tracer for key, a snapshot of the
	// config it was created with, and whether it was found. It never creates
	// a tracer.
	TracerWithMeta(key TracerKey) (*Tracer, TracerConfig, bool)

	// ListTracers enumerates cached tracers ordered by key.
	ListTracers() []TracerEntry
}

type TracerEntry struct {
	Key     TracerKey
	Config  TracerConfig // defensive copy
	Enabled bool
}
