// Package diag provides diagnostics checkers for the measurement and
// fault-containment subsystems.
//
// A Checker is any component that can report its status: Healthy, Degraded,
// or Unhealthy. The package ships two domain checkers: GuardChecker reports
// on the process-wide fault guard, and SessionChecker watches a measurement
// manager for sessions stuck in their initial phase.
//
// # Aggregating Checks
//
// Use Aggregator to combine multiple checks into a single composite check:
//
//	agg := diag.NewAggregator()
//	agg.Register("guard", diag.NewGuardChecker())
//	agg.Register("sessions", diag.NewSessionChecker(mgr, diag.SessionCheckerConfig{}))
//
//	results := agg.CheckAll(ctx)
//	overall := agg.OverallStatus(results)
package diag
