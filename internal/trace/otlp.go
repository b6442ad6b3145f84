// Package trace records user interactions as OpenTelemetry spans: one root
// span per session and one child span per interaction.
package trace

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const instrumentationName = "folio/ui"

// Interaction names.
const (
	EventOpenProject   = "project.open"
	EventCloseOverlay  = "overlay.close"
	EventFilterChange  = "skills.filter"
	EventFilterClear   = "skills.clear"
	EventSectionJump   = "nav.jump"
	EventSectionActive = "nav.active"
	EventCopyLink      = "project.copy_link"
)

// Tracer records interactions. A nil *Tracer is valid and records nothing.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer

	mu      sync.Mutex
	rootCtx context.Context
	root    oteltrace.Span
}

// NewOTLP creates a tracer exporting over OTLP/HTTP to endpoint. The
// exporter reads the remaining OTEL_EXPORTER_OTLP_* variables itself.
// Returns nil when endpoint is empty (disabled).
func NewOTLP(ctx context.Context, endpoint, serviceName string) (*Tracer, error) {
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return NewWithProvider(provider), nil
}

// NewWithProvider wraps an existing provider. Tests pass one backed by a
// span recorder.
func NewWithProvider(provider *sdktrace.TracerProvider) *Tracer {
	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
	}
}

// StartSession opens the root span all interactions are parented to.
// Calling it twice keeps the first session.
func (t *Tracer) StartSession(ctx context.Context, attrs map[string]string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.root != nil {
		return
	}
	t.rootCtx, t.root = t.tracer.Start(ctx, "session",
		oteltrace.WithAttributes(attributes(attrs)...),
	)
}

// Record emits a zero-duration span for one interaction.
func (t *Tracer) Record(name string, attrs map[string]string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	ctx := t.rootCtx
	t.mu.Unlock()
	if ctx == nil {
		ctx = context.Background()
	}
	now := time.Now()
	_, span := t.tracer.Start(ctx, name,
		oteltrace.WithTimestamp(now),
		oteltrace.WithAttributes(attributes(attrs)...),
	)
	span.End(oteltrace.WithTimestamp(now))
}

// Shutdown ends the session span and flushes the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	if t.root != nil {
		t.root.End()
		t.root = nil
		t.rootCtx = nil
	}
	t.mu.Unlock()
	return t.provider.Shutdown(ctx)
}

// attributes maps known keys into the folio.* namespace.
func attributes(attrs map[string]string) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		out = append(out, attribute.String(attributeKey(k), v))
	}
	return out
}

func attributeKey(k string) string {
	switch k {
	case "project":
		return "folio.project.title"
	case "category":
		return "folio.skills.category"
	case "search":
		return "folio.skills.search"
	case "section":
		return "folio.nav.section"
	case "via":
		return "folio.input.source"
	default:
		return "folio." + k
	}
}
