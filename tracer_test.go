package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestTracer_InertStart(t *testing.T) {
	tr := newInertTracer(TracerKey{Name: "inert"}, TracerConfig{})
	require.False(t, tr.Enabled())

	ctx, span := tr.Start(context.Background(), "op")
	require.NotNil(t, ctx)
	require.NotNil(t, span)
	assert.False(t, span.IsRecording())
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	released, err := tr.release()
	assert.False(t, released)
	assert.NoError(t, err)
}

func TestTracer_InertStartKeepsParent(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx, parent := tp.Tracer("parent").Start(context.Background(), "parent")
	defer parent.End()

	tr := newInertTracer(TracerKey{Name: "inert"}, TracerConfig{})
	_, child := tr.Start(ctx, "child")
	child.End()

	assert.Equal(t, parent.SpanContext().TraceID(), child.SpanContext().TraceID())
	assert.Empty(t, sr.Ended())
}

func TestTracer_ReleaseOnce(t *testing.T) {
	src := &fakeSource{}
	tr := newTracer(TracerKey{Name: "once"}, TracerConfig{}, src)

	released, err := tr.release()
	require.True(t, released)
	require.NoError(t, err)

	released, err = tr.release()
	assert.False(t, released)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, src.closes.Load())
	assert.False(t, tr.Enabled())
}

func TestTracer_ImplementsOTelTracer(t *testing.T) {
	var tr trace.Tracer = NewNoopProvider().Tracer("iface")
	_, span := tr.Start(context.Background(), "op")
	span.End()
}
