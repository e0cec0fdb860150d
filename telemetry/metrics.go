package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records measurement lifecycle metrics for observation sessions.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation/deadlines and return quickly.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordAttempt records one measurement attempt within a session.
	RecordAttempt(ctx context.Context, meta SessionMeta)

	// RecordReady records a session reaching its terminal ready state.
	// degenerate marks sessions forced ready after exhausting retries.
	RecordReady(ctx context.Context, meta SessionMeta, attempts int, elapsed time.Duration, degenerate bool)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter          metric.Meter
	attemptCount   metric.Int64Counter
	degenerateSess metric.Int64Counter
	readyHist      metric.Float64Histogram
}

// NewMetrics creates a Metrics instance with the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	attemptCount, err := meter.Int64Counter(
		"resize.measure.attempts",
		metric.WithDescription("Total number of measurement attempts"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, err
	}

	degenerateSess, err := meter.Int64Counter(
		"resize.measure.degenerate",
		metric.WithDescription("Sessions forced ready with degenerate dimensions"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		return nil, err
	}

	readyHist, err := meter.Float64Histogram(
		"resize.measure.ready_ms",
		metric.WithDescription("Time from session start to ready in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:          meter,
		attemptCount:   attemptCount,
		degenerateSess: degenerateSess,
		readyHist:      readyHist,
	}, nil
}

// RecordAttempt records one measurement attempt.
func (m *metricsImpl) RecordAttempt(ctx context.Context, meta SessionMeta) {
	m.attemptCount.Add(ctx, 1, metric.WithAttributes(sessionAttrs(meta)...))
}

// RecordReady records a session reaching its terminal ready state.
func (m *metricsImpl) RecordReady(ctx context.Context, meta SessionMeta, attempts int, elapsed time.Duration, degenerate bool) {
	attrs := sessionAttrs(meta)
	attrs = append(attrs, attribute.Int("session.attempts", attempts))
	opt := metric.WithAttributes(attrs...)

	if degenerate {
		m.degenerateSess.Add(ctx, 1, opt)
	}

	m.readyHist.Record(ctx, float64(elapsed.Milliseconds()), opt)
}

func sessionAttrs(meta SessionMeta) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("session.component", meta.Component),
	}
	if meta.Target != "" {
		attrs = append(attrs, attribute.String("session.target", meta.Target))
	}
	return attrs
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

// NewNoopMetrics returns a Metrics that records nothing.
func NewNoopMetrics() Metrics {
	return &noopMetrics{}
}

func (m *noopMetrics) RecordAttempt(ctx context.Context, meta SessionMeta) {}
func (m *noopMetrics) RecordReady(ctx context.Context, meta SessionMeta, attempts int, elapsed time.Duration, degenerate bool) {
}
