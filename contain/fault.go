package contain

import (
	"fmt"
	"runtime"
)

// Fault wraps a fault value together with the goroutine stack captured at
// the point of recovery. Faults converted from ordinary error returns carry
// an empty Stack.
type Fault struct {
	// Value is the original value passed to panic() or returned as an error.
	Value any

	// Message is the human-readable text of the fault.
	Message string

	// Stack is the goroutine stack trace at the point of capture, if the
	// fault was recovered from a panic.
	Stack string
}

// Error returns the fault message.
func (f *Fault) Error() string {
	return f.Message
}

// Unwrap returns the wrapped error when the fault value is an error.
func (f *Fault) Unwrap() error {
	if err, ok := f.Value.(error); ok {
		return err
	}
	return nil
}

// Capture builds a Fault from a recovered panic value, recording the
// current goroutine stack.
func Capture(v any) *Fault {
	// 8 KiB is enough for most stack traces. runtime.Stack truncates
	// gracefully if the buffer is too small.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)

	msg, ok := messageOf(v)
	if !ok {
		msg = fmt.Sprintf("%v", v)
	}
	return &Fault{
		Value:   v,
		Message: msg,
		Stack:   string(buf[:n]),
	}
}

// propagate surfaces the fault the way it originally arose: panics are
// re-raised, error returns are returned.
func (f *Fault) propagate() error {
	if f.Stack != "" {
		panic(f)
	}
	if err, ok := f.Value.(error); ok {
		return err
	}
	return f
}

// messageOf extracts readable text from a fault value. It reports false for
// values that carry no recognizable textual message.
func messageOf(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case *Fault:
		if x == nil {
			return "", false
		}
		return x.Message, true
	case error:
		return x.Error(), true
	case string:
		return x, true
	case fmt.Stringer:
		return x.String(), true
	default:
		return "", false
	}
}
