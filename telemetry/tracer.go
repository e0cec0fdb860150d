package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// SessionMeta identifies an observation session for telemetry purposes.
type SessionMeta struct {
	Component string // consuming component name (required)
	Target    string // target element identifier (optional)
}

// SpanName returns the deterministic span name for this session.
// Format: resize.observe.<component>
func (m SessionMeta) SpanName() string {
	return "resize.observe." + m.Component
}

// SessionID returns a stable identifier for the session.
func (m SessionMeta) SessionID() string {
	if m.Target != "" {
		return m.Component + ":" + m.Target
	}
	return m.Component
}

// Tracer wraps OpenTelemetry tracing with session-specific span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span covering a session's pending phase.
	StartSpan(ctx context.Context, meta SessionMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording any error.
	EndSpan(span trace.Span, err error)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// NewTracer creates a Tracer wrapping the given OpenTelemetry tracer.
func NewTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartSpan starts a new span with session metadata as attributes.
func (t *tracerImpl) StartSpan(ctx context.Context, meta SessionMeta) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("session.component", meta.Component),
		attribute.Bool("session.degenerate", false), // Updated in EndSpan if forced ready
	}
	if meta.Target != "" {
		attrs = append(attrs, attribute.String("session.target", meta.Target))
	}

	ctx, span := t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)

	return ctx, span
}

// EndSpan ends the span and records the error status if present.
func (t *tracerImpl) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// noopTracer is a tracer that does nothing.
type noopTracer struct {
	noop trace.Tracer
}

// NewNoopTracer creates a no-op tracer.
func NewNoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartSpan(ctx context.Context, meta SessionMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndSpan(span trace.Span, err error) {
	span.End()
}
