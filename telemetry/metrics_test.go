package telemetry

import (
	"context"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMeter(t *testing.T) (*sdkmetric.ManualReader, Metrics) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}
	return reader, m
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

// TestMetrics_AttemptCounter verifies resize.measure.attempts increments per attempt.
func TestMetrics_AttemptCounter(t *testing.T) {
	reader, m := newTestMeter(t)
	meta := SessionMeta{Component: "chart", Target: "#panel"}

	m.RecordAttempt(context.Background(), meta)
	m.RecordAttempt(context.Background(), meta)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("failed to collect metrics: %v", err)
	}

	found := findMetric(rm, "resize.measure.attempts")
	if found == nil {
		t.Fatal("resize.measure.attempts metric not found")
	}

	sum, ok := found.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("expected Sum[int64], got %T", found.Data)
	}
	if len(sum.DataPoints) == 0 {
		t.Fatal("no data points")
	}
	if sum.DataPoints[0].Value != 2 {
		t.Errorf("expected count 2, got %d", sum.DataPoints[0].Value)
	}
}

// TestMetrics_ReadyHistogram verifies readiness latency is recorded.
func TestMetrics_ReadyHistogram(t *testing.T) {
	reader, m := newTestMeter(t)
	meta := SessionMeta{Component: "chart"}

	m.RecordReady(context.Background(), meta, 3, 250*time.Millisecond, false)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("failed to collect metrics: %v", err)
	}

	found := findMetric(rm, "resize.measure.ready_ms")
	if found == nil {
		t.Fatal("resize.measure.ready_ms metric not found")
	}

	hist, ok := found.Data.(metricdata.Histogram[float64])
	if !ok {
		t.Fatalf("expected Histogram[float64], got %T", found.Data)
	}
	if len(hist.DataPoints) == 0 {
		t.Fatal("no data points")
	}
	if hist.DataPoints[0].Sum != 250 {
		t.Errorf("expected sum 250ms, got %f", hist.DataPoints[0].Sum)
	}
}

// TestMetrics_DegenerateCounter verifies forced-ready sessions are counted.
func TestMetrics_DegenerateCounter(t *testing.T) {
	reader, m := newTestMeter(t)
	meta := SessionMeta{Component: "chart"}

	m.RecordReady(context.Background(), meta, 4, time.Second, true)
	m.RecordReady(context.Background(), meta, 1, time.Millisecond, false)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("failed to collect metrics: %v", err)
	}

	found := findMetric(rm, "resize.measure.degenerate")
	if found == nil {
		t.Fatal("resize.measure.degenerate metric not found")
	}

	sum, ok := found.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("expected Sum[int64], got %T", found.Data)
	}

	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	if total != 1 {
		t.Errorf("expected 1 degenerate session, got %d", total)
	}
}

func TestNoopMetrics(t *testing.T) {
	m := NewNoopMetrics()

	// Must not panic.
	m.RecordAttempt(context.Background(), SessionMeta{Component: "chart"})
	m.RecordReady(context.Background(), SessionMeta{Component: "chart"}, 1, time.Millisecond, true)
}
