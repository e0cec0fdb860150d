package measure

import (
	"sync"
	"time"
)

// Observer delivers size-change notifications for observed targets.
//
// Contract:
//   - Observe registers a target and starts delivering its sizes to notify.
//     Observing a target that is already registered fails with
//     ErrAlreadyObserved.
//   - Unobserve stops delivery for one target. It is a no-op for targets
//     that are not registered.
//   - Disconnect stops delivery for all targets and releases the observer's
//     resources. A disconnected observer rejects further Observe calls.
//   - Notify callbacks may run concurrently with each other and with
//     Observe/Unobserve; implementations must not hold internal locks while
//     calling them.
type Observer interface {
	Observe(target Target, notify func(Size)) error
	Unobserve(target Target)
	Disconnect()
}

// PollingConfig configures a PollingObserver.
type PollingConfig struct {
	// Interval between measurements. Default: 200ms
	Interval time.Duration
}

// PollingObserver is an Observer for hosts without an event-driven size
// primitive. It measures each observed target on a fixed interval and
// notifies only when the size actually changed.
type PollingObserver struct {
	interval time.Duration

	mu      sync.Mutex
	watches map[string]*pollWatch
	closed  bool
}

type pollWatch struct {
	target Target
	notify func(Size)
	stop   chan struct{}
}

// NewPollingObserver creates a polling observer.
func NewPollingObserver(config PollingConfig) *PollingObserver {
	if config.Interval <= 0 {
		config.Interval = 200 * time.Millisecond
	}
	return &PollingObserver{
		interval: config.Interval,
		watches:  make(map[string]*pollWatch),
	}
}

// Observe starts polling the target's bounds.
func (p *PollingObserver) Observe(target Target, notify func(Size)) error {
	if target == nil {
		return ErrNilTarget
	}
	if notify == nil {
		return ErrNilNotify
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrObserverClosed
	}
	if _, exists := p.watches[target.ID()]; exists {
		return ErrAlreadyObserved
	}

	w := &pollWatch{target: target, notify: notify, stop: make(chan struct{})}
	p.watches[target.ID()] = w
	go p.poll(w)
	return nil
}

// Unobserve stops polling the target.
func (p *PollingObserver) Unobserve(target Target) {
	if target == nil {
		return
	}

	p.mu.Lock()
	w := p.watches[target.ID()]
	delete(p.watches, target.ID())
	p.mu.Unlock()

	if w != nil {
		close(w.stop)
	}
}

// Disconnect stops polling all targets.
func (p *PollingObserver) Disconnect() {
	p.mu.Lock()
	watches := p.watches
	p.watches = make(map[string]*pollWatch)
	p.closed = true
	p.mu.Unlock()

	for _, w := range watches {
		close(w.stop)
	}
}

func (p *PollingObserver) poll(w *pollWatch) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	var last Size
	var hasLast bool
	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			size, err := w.target.Bounds()
			if err != nil {
				// Target briefly unmeasurable; try again next tick.
				continue
			}
			if hasLast && size == last {
				continue
			}
			last, hasLast = size, true
			w.notify(size)
		}
	}
}

var _ Observer = (*PollingObserver)(nil)
