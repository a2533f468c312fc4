package tracing

import "sort"

var _ Inspector = (*BasicProvider)(nil)

// TracerWithMeta implements Inspector.TracerWithMeta for BasicProvider.
// It reads the cache without locking. After Shutdown nothing is found.
func (p *BasicProvider) TracerWithMeta(key TracerKey) (*Tracer, TracerConfig, bool) {
	c := p.cache.Load()
	if c == nil {
		return nil, TracerConfig{}, false
	}
	t, ok := p.load(c, key)
	if !ok {
		return nil, TracerConfig{}, false
	}
	return t, copyConfig(t.cfg), true
}

// ListTracers returns a best-effort snapshot of cached tracers. It does not
// take the cache lock; callers should treat the result as a point-in-time
// view that may race with concurrent creations or Shutdown.
func (p *BasicProvider) ListTracers() []TracerEntry {
	out := make([]TracerEntry, 0)
	c := p.cache.Load()
	if c == nil {
		return out
	}
	c.tracers.Range(func(_, v any) bool {
		t, ok := v.(*Tracer)
		if !ok {
			return true // skip invalid entries
		}
		out = append(out, TracerEntry{Key: t.key, Config: copyConfig(t.cfg), Enabled: t.Enabled()})
		return true
	})

	sort.Slice(out, func(i, j int) bool { return keyLess(out[i].Key, out[j].Key) })
	return out
}

// keyLess orders keys by name, then unversioned before versioned, then version.
func keyLess(a, b TracerKey) bool {
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	if a.Versioned != b.Versioned {
		return !a.Versioned
	}
	return a.Version < b.Version
}
