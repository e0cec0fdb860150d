package measure

import "errors"

// Sentinel errors for measurement operations.
var (
	// ErrNilTarget is returned when a nil target is observed.
	ErrNilTarget = errors.New("measure: target is nil")

	// ErrNilNotify is returned when an observer is given a nil notify function.
	ErrNilNotify = errors.New("measure: notify function is nil")

	// ErrManagerClosed is returned when starting a session on a closed manager.
	ErrManagerClosed = errors.New("measure: manager is closed")

	// ErrObserverClosed is returned when observing through a disconnected observer.
	ErrObserverClosed = errors.New("measure: observer is disconnected")

	// ErrAlreadyObserved is returned when a target is already being observed.
	ErrAlreadyObserved = errors.New("measure: target is already observed")

	// ErrMeasureFailed is returned when reading a target's bounds fails.
	ErrMeasureFailed = errors.New("measure: measurement failed")
)
