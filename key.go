package tracing

// TracerKey identifies an instrumentation scope. Two keys are equal iff their
// names are equal and their versions are equal, where "no version" is distinct
// from any version string, including the empty one.
//
// TracerKey is comparable and is used directly as a map key.
type TracerKey struct {
	Name      string
	Version   string
	Versioned bool
}

// NewTracerKey builds the canonical key for a scope name and its config.
// Only the version participates in the key; schema URL and attributes are
// advisory metadata.
func NewTracerKey(name string, cfg TracerConfig) TracerKey {
	k := TracerKey{Name: name}
	if cfg.Versioned {
		k.Version = cfg.Version
		k.Versioned = true
	}
	return k
}

// String renders the key as "name" or "name@version". An empty name is shown
// as "<unnamed>".
func (k TracerKey) String() string {
	name := k.Name
	if name == "" {
		name = "<unnamed>"
	}
	if !k.Versioned {
		return name
	}
	return name + "@" + k.Version
}
