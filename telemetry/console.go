package telemetry

import (
	"context"
	"fmt"
	"strings"
)

// ConsoleBridge adapts a structured logger into console warning/error sink
// functions. Wire the returned functions into the containment guard with
// contain.SetConsole so unsuppressed console output lands in structured
// logs.
func ConsoleBridge(l Logger) (warn, errFn func(args ...any), err error) {
	if l == nil {
		return nil, nil, ErrNilLogger
	}

	format := func(args []any) string {
		return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
	}

	warn = func(args ...any) {
		l.Warn(context.Background(), format(args))
	}
	errFn = func(args ...any) {
		l.Error(context.Background(), format(args))
	}
	return warn, errFn, nil
}
