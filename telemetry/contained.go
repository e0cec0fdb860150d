package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/metric"

	"github.com/jonwraymond/resizekit/contain"
)

// RegisterContainmentMetrics exposes the global guard's suppression counts
// as observable counters on the given meter. The stats source is typically
// contain.Stats.
func RegisterContainmentMetrics(meter metric.Meter, stats func() contain.GuardStats) error {
	if stats == nil {
		return ErrNilStatsSource
	}

	console, err := meter.Int64ObservableCounter(
		"resize.contained.console",
		metric.WithDescription("Benign resize faults absorbed from console output"),
		metric.WithUnit("{fault}"),
	)
	if err != nil {
		return err
	}

	uncaught, err := meter.Int64ObservableCounter(
		"resize.contained.uncaught",
		metric.WithDescription("Benign resize faults absorbed from the uncaught-fault channel"),
		metric.WithUnit("{fault}"),
	)
	if err != nil {
		return err
	}

	rejection, err := meter.Int64ObservableCounter(
		"resize.contained.rejection",
		metric.WithDescription("Benign resize faults absorbed from the rejection channel"),
		metric.WithUnit("{fault}"),
	)
	if err != nil {
		return err
	}

	_, err = meter.RegisterCallback(
		func(_ context.Context, o metric.Observer) error {
			s := stats()
			o.ObserveInt64(console, int64(s.ConsoleSuppressed))
			o.ObserveInt64(uncaught, int64(s.UncaughtSuppressed))
			o.ObserveInt64(rejection, int64(s.RejectionSuppressed))
			return nil
		},
		console, uncaught, rejection,
	)
	return err
}
