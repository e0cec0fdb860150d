package telemetry

import (
	"context"
	"errors"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func newTestTracer(t *testing.T) (*tracetest.SpanRecorder, Tracer) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	return recorder, NewTracer(tp.Tracer("test"))
}

func TestTracer_SpanNameAndAttributes(t *testing.T) {
	recorder, tracer := newTestTracer(t)

	meta := SessionMeta{Component: "chart", Target: "#panel"}
	_, span := tracer.StartSpan(context.Background(), meta)
	tracer.EndSpan(span, nil)

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}

	got := spans[0]
	if got.Name() != "resize.observe.chart" {
		t.Errorf("span name = %q, want resize.observe.chart", got.Name())
	}
	if got.SpanKind() != trace.SpanKindInternal {
		t.Errorf("span kind = %v, want internal", got.SpanKind())
	}

	attrs := got.Attributes()
	foundTarget := false
	for _, kv := range attrs {
		if string(kv.Key) == "session.target" && kv.Value.AsString() == "#panel" {
			foundTarget = true
		}
	}
	if !foundTarget {
		t.Error("session.target attribute missing")
	}
}

func TestTracer_EndSpanRecordsError(t *testing.T) {
	recorder, tracer := newTestTracer(t)

	_, span := tracer.StartSpan(context.Background(), SessionMeta{Component: "chart"})
	tracer.EndSpan(span, errors.New("measurement failed"))

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(spans))
	}
	if len(spans[0].Events()) == 0 {
		t.Error("no error event recorded on span")
	}
}

func TestNoopTracer(t *testing.T) {
	tracer := NewNoopTracer()

	ctx, span := tracer.StartSpan(context.Background(), SessionMeta{Component: "chart"})
	if ctx == nil || span == nil {
		t.Fatal("noop tracer returned nil context or span")
	}
	tracer.EndSpan(span, errors.New("ignored"))
}
