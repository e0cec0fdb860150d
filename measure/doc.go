// Package measure manages the lifecycle of observing a target's box size.
//
// A freshly mounted target may not have stable layout yet: its first
// measurements can come back zero-sized or fail outright. Sessions handle
// this with bounded retry: each attempt measures the target, succeeding once
// both dimensions meet the configured minimums and otherwise retrying after
// a bounded, non-decreasing delay. A session that exhausts its retries is
// forced ready with the last observed dimensions so a consumer is never left
// permanently un-rendered.
//
// # Usage
//
//	mgr := measure.NewManager(measure.ManagerConfig{})
//	defer mgr.Close()
//
//	session, err := mgr.StartObserving(target, measure.SessionConfig{
//	    RetryDelay: 100 * time.Millisecond,
//	    MaxRetries: 3,
//	    MinWidth:   1,
//	    MinHeight:  1,
//	    OnUpdate: func(m measure.Measurement) {
//	        if m.Ready {
//	            render(m.Width, m.Height)
//	        }
//	    },
//	})
//	if err != nil {
//	    return err
//	}
//	defer session.Stop()
//
// The host's size-notification primitive plugs in through the Observer
// interface. Where no event-driven primitive exists, the built-in
// PollingObserver substitutes periodic measurement with equivalent readiness
// and cleanup semantics.
package measure
