package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newRecordingTracer() (*Tracer, *tracetest.SpanRecorder) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	return NewWithProvider(tp), rec
}

func TestNewOTLP_DisabledWithoutEndpoint(t *testing.T) {
	tr, err := NewOTLP(context.Background(), "", "folio")
	require.NoError(t, err)
	assert.Nil(t, tr)
}

func TestNilTracerIsNoop(t *testing.T) {
	var tr *Tracer
	tr.StartSession(context.Background(), nil)
	tr.Record(EventOpenProject, map[string]string{"project": "P1"})
	assert.NoError(t, tr.Shutdown(context.Background()))
}

func TestRecord_ParentsToSession(t *testing.T) {
	tr, rec := newRecordingTracer()
	tr.StartSession(context.Background(), map[string]string{"content": "builtin"})
	tr.Record(EventOpenProject, map[string]string{"project": "P1"})
	tr.Record(EventCloseOverlay, map[string]string{"via": "backdrop"})
	require.NoError(t, tr.Shutdown(context.Background()))

	spans := rec.Ended()
	require.Len(t, spans, 3)

	open, closeSpan, session := spans[0], spans[1], spans[2]
	assert.Equal(t, EventOpenProject, open.Name())
	assert.Equal(t, EventCloseOverlay, closeSpan.Name())
	assert.Equal(t, "session", session.Name())

	assert.Equal(t, session.SpanContext().TraceID(), open.SpanContext().TraceID())
	assert.Equal(t, session.SpanContext().SpanID(), open.Parent().SpanID())
	assert.Contains(t, open.Attributes(), attribute.String("folio.project.title", "P1"))
	assert.Contains(t, closeSpan.Attributes(), attribute.String("folio.input.source", "backdrop"))
	assert.Contains(t, session.Attributes(), attribute.String("folio.content", "builtin"))
}

func TestRecord_WithoutSessionIsRootSpan(t *testing.T) {
	tr, rec := newRecordingTracer()
	tr.Record(EventFilterClear, nil)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.False(t, spans[0].Parent().IsValid())
}

func TestStartSession_Twice(t *testing.T) {
	tr, rec := newRecordingTracer()
	tr.StartSession(context.Background(), nil)
	tr.StartSession(context.Background(), nil)
	require.NoError(t, tr.Shutdown(context.Background()))
	assert.Len(t, rec.Ended(), 1)
}
