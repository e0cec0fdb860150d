package measure

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jonwraymond/resizekit/cache"
	"github.com/jonwraymond/resizekit/telemetry"
)

// ManagerConfig configures a Manager.
type ManagerConfig struct {
	// Observer is the host's size-notification primitive. If nil, a
	// PollingObserver with default settings is used.
	Observer Observer

	// Component names the consuming component in telemetry attributes and
	// cache key scopes. Default: "measure"
	Component string

	// Cache remembers last-known dimensions so a remounted target starts
	// from its previous size instead of zero. Optional.
	Cache cache.Cache

	// Keyer derives cache keys. Default: cache.NewDefaultKeyer()
	Keyer cache.Keyer

	// Metrics records session lifecycle metrics. Default: noop
	Metrics telemetry.Metrics

	// Logger receives session lifecycle logs. Default: noop; sessions log
	// nothing unless a logger is provided.
	Logger telemetry.Logger
}

// ManagerStats is a point-in-time snapshot of a manager's sessions.
type ManagerStats struct {
	// Active is the number of sessions that have not been stopped.
	Active int
	// Pending is the number of sessions still in their initial
	// measurement phase.
	Pending int
	// Ready is the number of sessions that completed their initial phase.
	Ready int
	// LongestPending is the age of the oldest pending session.
	LongestPending time.Duration
}

// Manager creates and tracks measurement sessions. All methods are safe for
// concurrent use.
type Manager struct {
	obs       Observer
	component string
	cache     cache.Cache
	keyer     cache.Keyer
	metrics   telemetry.Metrics
	logger    telemetry.Logger

	// flight coalesces concurrent bounds reads of the same target.
	flight singleflight.Group

	mu       sync.Mutex
	sessions map[*Session]struct{}
	closed   bool
}

// NewManager creates a manager with the given configuration.
func NewManager(config ManagerConfig) *Manager {
	if config.Observer == nil {
		config.Observer = NewPollingObserver(PollingConfig{})
	}
	if config.Component == "" {
		config.Component = "measure"
	}
	if config.Keyer == nil {
		config.Keyer = cache.NewDefaultKeyer()
	}
	if config.Metrics == nil {
		config.Metrics = telemetry.NewNoopMetrics()
	}
	if config.Logger == nil {
		config.Logger = telemetry.NewNoopLogger()
	}
	return &Manager{
		obs:       config.Observer,
		component: config.Component,
		cache:     config.Cache,
		keyer:     config.Keyer,
		metrics:   config.Metrics,
		logger:    config.Logger,
		sessions:  make(map[*Session]struct{}),
	}
}

// StartObserving begins a measurement session for the target. The first
// attempt runs synchronously, so a target that measures successfully is
// ready before StartObserving returns; retries run on timers afterwards.
func (m *Manager) StartObserving(target Target, config SessionConfig) (*Session, error) {
	if target == nil {
		return nil, ErrNilTarget
	}

	s := &Session{
		mgr:     m,
		target:  target,
		config:  normalizeConfig(config),
		meta:    telemetry.SessionMeta{Component: m.component, Target: target.ID()},
		state:   StatePending,
		started: time.Now(),
	}

	if m.cache != nil {
		if dims, ok := m.cache.Get(context.Background(), m.key(target)); ok {
			// Seed the pending measurement with the last known size so
			// consumers of a remounted target never start from zero.
			s.width, s.height = dims.Width, dims.Height
		}
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, ErrManagerClosed
	}
	m.sessions[s] = struct{}{}
	m.mu.Unlock()

	if err := m.obs.Observe(target, s.handleResize); err != nil {
		// The session still works through its own attempts; it just will
		// not see post-ready size changes.
		m.logger.Warn(context.Background(), "size observer unavailable for target",
			telemetry.Field{Key: "target", Value: target.ID()},
			telemetry.Field{Key: "error", Value: err.Error()},
		)
	} else {
		s.mu.Lock()
		s.observing = true
		s.mu.Unlock()
	}

	s.runAttempt()
	return s, nil
}

// StopObserving stops the session. Safe to call with nil and safe to call
// more than once.
func (m *Manager) StopObserving(s *Session) {
	if s == nil {
		return
	}
	s.Stop()
}

// Stats returns a snapshot of the manager's sessions.
func (m *Manager) Stats() ManagerStats {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.Unlock()

	var stats ManagerStats
	now := time.Now()
	for _, s := range sessions {
		s.mu.Lock()
		state := s.state
		started := s.started
		s.mu.Unlock()

		switch state {
		case StatePending:
			stats.Active++
			stats.Pending++
			if age := now.Sub(started); age > stats.LongestPending {
				stats.LongestPending = age
			}
		case StateReady:
			stats.Active++
			stats.Ready++
		}
	}
	return stats
}

// Close stops every session and disconnects the observer. Further
// StartObserving calls fail with ErrManagerClosed. Idempotent.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	sessions := make([]*Session, 0, len(m.sessions))
	for s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.Unlock()

	for _, s := range sessions {
		s.Stop()
	}
	m.obs.Disconnect()
}

// measure reads the target's bounds, coalescing concurrent reads of the
// same target and converting panics into errors so a faulty target cannot
// take down the session's timer goroutine.
func (m *Manager) measure(target Target) (Size, error) {
	v, err, _ := m.flight.Do(target.ID(), func() (out any, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: panic: %v", ErrMeasureFailed, r)
			}
		}()
		size, err := target.Bounds()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMeasureFailed, err)
		}
		return size, nil
	})
	if err != nil {
		return Size{}, err
	}
	return v.(Size), nil
}

func (m *Manager) key(target Target) string {
	return m.keyer.Key(m.component, target.ID())
}

func (m *Manager) storeCached(ctx context.Context, target Target, size Size) {
	if m.cache == nil {
		return
	}
	dims := cache.Dimensions{Width: size.Width, Height: size.Height, ObservedAt: time.Now()}
	if err := m.cache.Set(ctx, m.key(target), dims, 0); err != nil {
		m.logger.Debug(ctx, "failed to cache dimensions",
			telemetry.Field{Key: "target", Value: target.ID()},
			telemetry.Field{Key: "error", Value: err.Error()},
		)
	}
}

func (m *Manager) remove(s *Session) {
	m.mu.Lock()
	delete(m.sessions, s)
	m.mu.Unlock()
}
