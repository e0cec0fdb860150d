package contain

import "context"

// Decision is a fault handler's verdict on a rendering fault.
type Decision int

const (
	// Propagate surfaces the fault to outer handling unchanged.
	Propagate Decision = iota
	// Continue absorbs the fault and re-renders as if it had not occurred.
	Continue
)

// String returns the string representation of the decision.
func (d Decision) String() string {
	switch d {
	case Propagate:
		return "propagate"
	case Continue:
		return "continue"
	default:
		return "unknown"
	}
}

// FaultHandler decides whether a fault raised while rendering a subtree is
// absorbed or propagated.
//
// Contract:
// - Purity: OnFault must not panic and must not mutate the fault.
// - Concurrency: implementations must be safe for concurrent use.
type FaultHandler interface {
	OnFault(f *Fault) Decision
}

// FaultHandlerFunc adapts an ordinary function to a FaultHandler.
type FaultHandlerFunc func(f *Fault) Decision

// OnFault calls fn.
func (fn FaultHandlerFunc) OnFault(f *Fault) Decision {
	return fn(f)
}

// BenignFaults returns the standard handler: Continue for the benign
// size-observation fault, Propagate for everything else.
func BenignFaults() FaultHandler {
	return FaultHandlerFunc(func(f *Fault) Decision {
		if Benign(f) {
			return Continue
		}
		return Propagate
	})
}

// Boundary wraps subtree rendering with fault containment. Unlike a
// conventional error boundary it shows no fallback view: when its handler
// rules a fault benign, the subtree is re-rendered transparently.
type Boundary struct {
	handler FaultHandler
}

// NewBoundary creates a render boundary. A nil handler defaults to
// BenignFaults.
func NewBoundary(handler FaultHandler) *Boundary {
	if handler == nil {
		handler = BenignFaults()
	}
	return &Boundary{handler: handler}
}

// Render runs the render function, containing faults per the boundary's
// handler. A fault ruled Continue triggers exactly one transparent
// re-render; a fault on the re-render always propagates, whatever its
// classification, to avoid a containment loop. Propagated panics are
// re-raised, propagated errors are returned unchanged.
func (b *Boundary) Render(ctx context.Context, render func(context.Context) error) error {
	if render == nil {
		return ErrNilRender
	}

	f := b.run(ctx, render)
	if f == nil {
		return nil
	}

	if b.handler.OnFault(f) == Propagate {
		return f.propagate()
	}

	if f = b.run(ctx, render); f != nil {
		return f.propagate()
	}
	return nil
}

// run executes render once, converting a panic or a returned error into a
// Fault.
func (b *Boundary) run(ctx context.Context, render func(context.Context) error) (f *Fault) {
	defer func() {
		if v := recover(); v != nil {
			f = Capture(v)
		}
	}()

	if err := render(ctx); err != nil {
		f = &Fault{Value: err, Message: err.Error()}
	}
	return f
}
