package contain

import "errors"

// Sentinel errors for containment operations.
var (
	// ErrNilRender is returned when a Boundary is asked to render nil content.
	ErrNilRender = errors.New("contain: render function is nil")
)
