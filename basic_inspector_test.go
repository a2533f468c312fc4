package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestTracerWithMeta(t *testing.T) {
	t.Run("not_created", func(t *testing.T) {
		p, f := newFakeProvider()
		inst, cfg, ok := p.TracerWithMeta(TracerKey{Name: "missing"})
		assert.False(t, ok)
		assert.Nil(t, inst)
		assert.Equal(t, TracerConfig{}, cfg)
		assert.Empty(t, f.sources(), "inspection must not create tracers")
	})

	t.Run("created_and_snapshot", func(t *testing.T) {
		p, _ := newFakeProvider()
		tr := p.Tracer("t1", WithVersion("0.1"))
		inst, cfg, ok := p.TracerWithMeta(TracerKey{Name: "t1", Version: "0.1", Versioned: true})
		require.True(t, ok)
		assert.Same(t, tr, inst)
		assert.Equal(t, "0.1", cfg.Version)
		assert.True(t, cfg.Versioned)
		assert.Empty(t, cfg.SchemaURL)
		assert.Empty(t, cfg.Attributes)
	})

	t.Run("version_must_match", func(t *testing.T) {
		p, _ := newFakeProvider()
		p.Tracer("t2", WithVersion("1"))
		_, _, ok := p.TracerWithMeta(TracerKey{Name: "t2"})
		assert.False(t, ok)
	})

	t.Run("created_with_options_and_defensive_copy", func(t *testing.T) {
		p, _ := newFakeProvider()
		attrs := []attribute.KeyValue{attribute.String("k", "v")}
		tr := p.Tracer("t3", WithSchemaURL("https://example.com/s"), WithAttributes(attrs...))

		_, cfg1, ok := p.TracerWithMeta(tr.Key())
		require.True(t, ok)
		assert.Equal(t, "https://example.com/s", cfg1.SchemaURL)
		require.Len(t, cfg1.Attributes, 1)
		assert.Equal(t, attribute.String("k", "v"), cfg1.Attributes[0])

		// mutate both the returned config and the caller's slice
		cfg1.Attributes[0] = attribute.String("k", "mutated")
		attrs[0] = attribute.String("k", "external")

		_, cfg2, ok := p.TracerWithMeta(tr.Key())
		require.True(t, ok)
		assert.Equal(t, attribute.String("k", "v"), cfg2.Attributes[0])
	})
}

func TestListTracers(t *testing.T) {
	p, _ := newFakeProvider()
	p.Tracer("b")
	p.Tracer("a", WithVersion("2"))
	p.Tracer("a")
	p.Tracer("a", WithVersion("1"), WithAttributes(attribute.Int("n", 1)))

	entries := p.ListTracers()
	require.Len(t, entries, 4)

	keys := make([]TracerKey, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
		assert.True(t, e.Enabled)
	}
	assert.Equal(t, []TracerKey{
		{Name: "a"},
		{Name: "a", Version: "1", Versioned: true},
		{Name: "a", Version: "2", Versioned: true},
		{Name: "b"},
	}, keys)

	// defensive copy
	entries[1].Config.Attributes[0] = attribute.Int("n", 99)
	_, cfg, ok := p.TracerWithMeta(entries[1].Key)
	require.True(t, ok)
	assert.Equal(t, int64(1), cfg.Attributes[0].Value.AsInt64())

	require.NoError(t, p.Shutdown())
	assert.Empty(t, p.ListTracers())
}
