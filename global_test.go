package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The default provider is process-wide, so everything about it is checked in
// one test, ending with its shutdown.
func TestDefault(t *testing.T) {
	d := Default()
	require.NotNil(t, d)
	assert.Same(t, d, Default())
	assert.False(t, InitDefault(WithLogger(nil)), "InitDefault after Default must not take effect")
	assert.Same(t, d, Default())

	tr := d.Tracer("default-scope")
	assert.Same(t, tr, Default().Tracer("default-scope"))

	require.NoError(t, d.Shutdown())
	assert.Same(t, d, Default(), "a shut down default provider is not recreated")
	assert.True(t, Default().IsShutdown())
	assert.False(t, Default().Tracer("default-scope").Enabled())
}
