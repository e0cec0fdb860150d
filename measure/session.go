package measure

import (
	"context"
	"sync"
	"time"

	"github.com/jonwraymond/resizekit/telemetry"
)

// SessionState represents the lifecycle state of a session.
type SessionState int

const (
	// StatePending means the initial measurement has not yet completed.
	StatePending SessionState = iota
	// StateReady means the initial measurement phase is over, either
	// because a measurement met the minimums or because retries were
	// exhausted and the session was forced ready.
	StateReady
	// StateStopped means the session was stopped and will never emit again.
	StateStopped
)

// String returns the string representation of the state.
func (s SessionState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateReady:
		return "ready"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// BackoffStrategy determines how the retry delay grows between attempts.
type BackoffStrategy int

const (
	// BackoffConstant keeps the retry delay fixed.
	BackoffConstant BackoffStrategy = iota
	// BackoffDouble doubles the delay after each attempt, capped at MaxDelay.
	BackoffDouble
)

// SessionConfig configures a measurement session.
type SessionConfig struct {
	// RetryDelay is the delay before each re-measurement attempt.
	// Default: 100ms
	RetryDelay time.Duration

	// MaxRetries is the number of re-measurement attempts after the first.
	// Zero means exactly one attempt; negative values are treated as zero.
	// DefaultSessionConfig sets 3.
	MaxRetries int

	// MinWidth and MinHeight are the smallest dimensions that count as a
	// successful measurement. Default: 1
	MinWidth  float64
	MinHeight float64

	// Backoff selects how the retry delay grows across attempts.
	// Default: BackoffConstant
	Backoff BackoffStrategy

	// MaxDelay caps the retry delay under BackoffDouble. Default: 5s
	MaxDelay time.Duration

	// OnUpdate is invoked with the current measurement after each attempt
	// and on every post-ready size change. Optional. It is called outside
	// the session's lock, so it may safely call back into the session,
	// including Stop.
	OnUpdate func(Measurement)
}

// DefaultSessionConfig returns the standard retry profile: up to four
// attempts 100ms apart, requiring at least 1x1.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		RetryDelay: 100 * time.Millisecond,
		MaxRetries: 3,
		MinWidth:   1,
		MinHeight:  1,
		MaxDelay:   5 * time.Second,
	}
}

func normalizeConfig(config SessionConfig) SessionConfig {
	if config.RetryDelay <= 0 {
		config.RetryDelay = 100 * time.Millisecond
	}
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	if config.MinWidth <= 0 {
		config.MinWidth = 1
	}
	if config.MinHeight <= 0 {
		config.MinHeight = 1
	}
	if config.MaxDelay <= 0 {
		config.MaxDelay = 5 * time.Second
	}
	return config
}

// retryDelay returns the delay before the attempt following the given
// completed attempt count. Delays never decrease and never exceed MaxDelay.
func retryDelay(config SessionConfig, completed int) time.Duration {
	delay := config.RetryDelay
	if config.Backoff == BackoffDouble {
		for i := 1; i < completed; i++ {
			delay *= 2
			if delay >= config.MaxDelay {
				return config.MaxDelay
			}
		}
	}
	if delay > config.MaxDelay {
		delay = config.MaxDelay
	}
	return delay
}

// Session tracks the measurement lifecycle of one target.
type Session struct {
	mgr    *Manager
	target Target
	config SessionConfig
	meta   telemetry.SessionMeta

	mu         sync.Mutex
	state      SessionState
	attempts   int
	width      float64
	height     float64
	degenerate bool
	started    time.Time
	timer      *time.Timer
	observing  bool
}

// State returns the session's current lifecycle state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Measurement returns the session's current measurement.
func (s *Session) Measurement() Measurement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.measurementLocked()
}

// Attempts returns the number of completed measurement attempts.
func (s *Session) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}

// Degenerate reports whether the session was forced ready without a
// measurement that met the configured minimums.
func (s *Session) Degenerate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degenerate
}

func (s *Session) usableLocked() bool {
	return s.width >= s.config.MinWidth && s.height >= s.config.MinHeight
}

func (s *Session) measurementLocked() Measurement {
	return Measurement{Width: s.width, Height: s.height, Ready: s.state == StateReady}
}

// Stop ends the session: pending retries are cancelled and no further
// updates are delivered. Stop is idempotent and safe to call from OnUpdate.
func (s *Session) Stop() {
	s.mu.Lock()
	if s.state == StateStopped {
		s.mu.Unlock()
		return
	}
	s.state = StateStopped
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	observing := s.observing
	s.observing = false
	s.mu.Unlock()

	if observing {
		s.mgr.obs.Unobserve(s.target)
	}
	s.mgr.remove(s)
}

// runAttempt performs one measurement attempt and schedules the next one
// if the session is still pending. It is the timer callback for retries
// and is invoked directly for the first attempt.
func (s *Session) runAttempt() {
	s.mu.Lock()
	if s.state != StatePending {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	size, err := s.mgr.measure(s.target)

	s.mu.Lock()
	if s.state != StatePending {
		// Stopped while the measurement was in flight.
		s.mu.Unlock()
		return
	}
	s.attempts++
	meets := err == nil && size.Width >= s.config.MinWidth && size.Height >= s.config.MinHeight
	if err == nil && (meets || !s.usableLocked()) {
		// A reading below the minimums never replaces a usable size, so a
		// cache-seeded session keeps its seed through zero readings.
		s.width, s.height = size.Width, size.Height
	}
	done := meets
	switch {
	case meets:
	case s.attempts > s.config.MaxRetries:
		done = true
		s.degenerate = true
	default:
		s.timer = time.AfterFunc(retryDelay(s.config, s.attempts), s.runAttempt)
	}
	if done {
		s.state = StateReady
	}

	m := s.measurementLocked()
	attempts := s.attempts
	degenerate := s.degenerate
	elapsed := time.Since(s.started)
	s.mu.Unlock()

	ctx := context.Background()
	s.mgr.metrics.RecordAttempt(ctx, s.meta)
	if done {
		s.mgr.metrics.RecordReady(ctx, s.meta, attempts, elapsed, degenerate)
		if !degenerate {
			s.mgr.storeCached(ctx, s.target, Size{Width: m.Width, Height: m.Height})
		}
		s.mgr.logger.Debug(ctx, "measurement session ready",
			telemetry.Field{Key: "target", Value: s.target.ID()},
			telemetry.Field{Key: "attempts", Value: attempts},
			telemetry.Field{Key: "width", Value: m.Width},
			telemetry.Field{Key: "height", Value: m.Height},
			telemetry.Field{Key: "degenerate", Value: degenerate},
		)
	}
	if s.config.OnUpdate != nil {
		s.config.OnUpdate(m)
	}
}

// handleResize receives size notifications from the observer. Notifications
// are ignored until the session is ready; after that, changed sizes are
// recorded and forwarded to OnUpdate.
func (s *Session) handleResize(size Size) {
	s.mu.Lock()
	if s.state != StateReady {
		s.mu.Unlock()
		return
	}
	if size.Width == s.width && size.Height == s.height {
		s.mu.Unlock()
		return
	}
	s.width, s.height = size.Width, size.Height
	m := s.measurementLocked()
	s.mu.Unlock()

	s.mgr.storeCached(context.Background(), s.target, size)
	if s.config.OnUpdate != nil {
		s.config.OnUpdate(m)
	}
}
