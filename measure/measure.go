package measure

// Size is a measured width and height in layout units.
type Size struct {
	Width  float64
	Height float64
}

// Measurement is a session's current view of its target.
type Measurement struct {
	// Width and Height are the most recently observed dimensions. They may
	// be zero while the session is still pending or when a session was
	// forced ready after exhausting its retries.
	Width  float64
	Height float64

	// Ready reports whether the session has finished its initial
	// measurement phase, successfully or by forced readiness.
	Ready bool
}

// Target is anything whose box size can be measured.
//
// Contract:
//   - ID returns a stable identifier, unique among concurrently observed
//     targets. It is used for cache keys, telemetry attributes, and
//     measurement coalescing.
//   - Bounds returns the target's current size. It may fail or return a
//     zero size while the target's layout has not settled; callers retry.
//   - Both methods must be safe for concurrent use.
type Target interface {
	ID() string
	Bounds() (Size, error)
}

// TargetFunc adapts an identifier and a bounds function to the Target
// interface.
type TargetFunc struct {
	id     string
	bounds func() (Size, error)
}

// NewTargetFunc creates a Target from a bounds function.
func NewTargetFunc(id string, bounds func() (Size, error)) *TargetFunc {
	return &TargetFunc{id: id, bounds: bounds}
}

// ID returns the target's identifier.
func (t *TargetFunc) ID() string { return t.id }

// Bounds invokes the wrapped bounds function.
func (t *TargetFunc) Bounds() (Size, error) {
	if t.bounds == nil {
		return Size{}, ErrMeasureFailed
	}
	return t.bounds()
}

var _ Target = (*TargetFunc)(nil)
