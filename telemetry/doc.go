// Package telemetry provides observability primitives for size-observation
// sessions.
//
// It is a pure instrumentation library: no measurement, no containment, no
// I/O beyond exporter setup. Consumers wire the observer into a
// measure.Manager or bridge its logger into the contain guard's console
// sinks.
package telemetry
