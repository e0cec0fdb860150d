package diag

import (
	"context"
	"fmt"

	"github.com/jonwraymond/resizekit/contain"
)

// GuardChecker reports on the process-wide fault guard. It is degraded
// until the guard has been installed, since benign observation faults
// would otherwise surface as errors.
type GuardChecker struct{}

// NewGuardChecker creates a guard checker.
func NewGuardChecker() *GuardChecker {
	return &GuardChecker{}
}

// Name returns the name of this checker.
func (c *GuardChecker) Name() string {
	return "fault-guard"
}

// Check reports the guard's installation state and suppression counts.
func (c *GuardChecker) Check(ctx context.Context) Result {
	if !contain.Installed() {
		return Degraded("fault guard not installed")
	}

	stats := contain.Stats()
	return Healthy(fmt.Sprintf("fault guard installed, %d faults absorbed", stats.Total())).
		WithDetails(map[string]any{
			"console_suppressed":   stats.ConsoleSuppressed,
			"uncaught_suppressed":  stats.UncaughtSuppressed,
			"rejection_suppressed": stats.RejectionSuppressed,
		})
}

var _ Checker = (*GuardChecker)(nil)
