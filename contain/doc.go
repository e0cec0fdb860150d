// Package contain recognizes and absorbs the benign fault raised by the
// platform's size-observation loop cutoff.
//
// The cutoff fires when a resize callback's own side effects prevent all
// pending notifications from being delivered within one cycle. It signals a
// safety stop, not an application error, yet it surfaces through the same
// channels as real failures: console output, the uncaught-fault channel, the
// rejection channel, and subtree render boundaries.
//
// This package provides one conservative classifier (Benign) and two
// containment layers built on it:
//
//   - A process-wide guard (Install) that interposes the classifier on the
//     console and fault-report surfaces. Benign values are fully absorbed;
//     everything else passes through unchanged.
//
//   - A render boundary (Boundary) that re-renders its subtree transparently
//     when a fault raised during rendering is classified benign, and
//     propagates every other fault to outer handling.
//
// Install must run before any observation session starts and is safe to call
// redundantly from multiple bootstrap paths.
package contain
