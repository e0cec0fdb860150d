package diag

import (
	"context"
	"fmt"
	"time"

	"github.com/jonwraymond/resizekit/measure"
)

// SessionCheckerConfig configures a SessionChecker.
type SessionCheckerConfig struct {
	// PendingThreshold is how long a session may sit in its initial
	// measurement phase before the checker reports degraded. A session
	// pending longer than this usually means retry delays are too long
	// or the retry budget is effectively unbounded.
	// Default: 5 seconds
	PendingThreshold time.Duration
}

// SessionChecker watches a measurement manager for sessions stuck in
// their initial phase.
type SessionChecker struct {
	mgr    *measure.Manager
	config SessionCheckerConfig
}

// NewSessionChecker creates a session checker for the given manager.
func NewSessionChecker(mgr *measure.Manager, config SessionCheckerConfig) (*SessionChecker, error) {
	if mgr == nil {
		return nil, ErrNilManager
	}
	if config.PendingThreshold <= 0 {
		config.PendingThreshold = 5 * time.Second
	}
	return &SessionChecker{mgr: mgr, config: config}, nil
}

// Name returns the name of this checker.
func (c *SessionChecker) Name() string {
	return "measure-sessions"
}

// Check reports on the manager's sessions. Healthy when every session is
// ready (or none exist), degraded when sessions have been pending longer
// than the threshold.
func (c *SessionChecker) Check(ctx context.Context) Result {
	stats := c.mgr.Stats()

	details := map[string]any{
		"active":  stats.Active,
		"pending": stats.Pending,
		"ready":   stats.Ready,
	}

	if stats.Pending > 0 && stats.LongestPending > c.config.PendingThreshold {
		details["longest_pending"] = stats.LongestPending.String()
		return Degraded(fmt.Sprintf("%d sessions pending, oldest for %s",
			stats.Pending, stats.LongestPending.Round(time.Millisecond))).
			WithDetails(details)
	}

	return Healthy(fmt.Sprintf("%d active sessions, %d ready", stats.Active, stats.Ready)).
		WithDetails(details)
}

var _ Checker = (*SessionChecker)(nil)
