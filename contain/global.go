package contain

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
)

// The process-wide guard interposes Benign on three surfaces: console
// warning/error output, the synchronous uncaught-fault channel, and the
// asynchronous rejection channel. Hosts route their reporting through the
// package-level dispatch functions and may rebind the underlying sinks.
//
// Installation state is a single module-level flag: the first Install wins,
// later calls are no-ops, and the guard is never torn down for the life of
// the process.

var (
	guardMu   sync.RWMutex
	installed bool

	consoleWarnSink  = defaultConsoleWarn
	consoleErrorSink = defaultConsoleError
	uncaughtSink     = defaultFaultSink
	rejectionSink    = defaultFaultSink

	suppressedConsole   atomic.Uint64
	suppressedUncaught  atomic.Uint64
	suppressedRejection atomic.Uint64
)

// GuardStats counts faults absorbed by the installed guard, per surface.
type GuardStats struct {
	ConsoleSuppressed   uint64
	UncaughtSuppressed  uint64
	RejectionSuppressed uint64
}

// Total returns the number of faults absorbed across all surfaces.
func (s GuardStats) Total() uint64 {
	return s.ConsoleSuppressed + s.UncaughtSuppressed + s.RejectionSuppressed
}

// Install activates the process-wide guard. The first call wins; repeated
// calls from any bootstrap path are no-ops. Install must run before any
// observation session starts, since the platform may raise the benign fault
// at any point after observation begins.
func Install() {
	guardMu.Lock()
	defer guardMu.Unlock()
	installed = true
}

// Installed reports whether the process-wide guard is active.
func Installed() bool {
	guardMu.RLock()
	defer guardMu.RUnlock()
	return installed
}

// Stats returns the current suppression counts.
func Stats() GuardStats {
	return GuardStats{
		ConsoleSuppressed:   suppressedConsole.Load(),
		UncaughtSuppressed:  suppressedUncaught.Load(),
		RejectionSuppressed: suppressedRejection.Load(),
	}
}

// ConsoleWarn forwards to the console warning sink. When the guard is
// installed and any argument is classified benign, the call is absorbed.
func ConsoleWarn(args ...any) {
	if absorbConsole(args) {
		return
	}
	guardMu.RLock()
	sink := consoleWarnSink
	guardMu.RUnlock()
	sink(args...)
}

// ConsoleError forwards to the console error sink. When the guard is
// installed and any argument is classified benign, the call is absorbed.
func ConsoleError(args ...any) {
	if absorbConsole(args) {
		return
	}
	guardMu.RLock()
	sink := consoleErrorSink
	guardMu.RUnlock()
	sink(args...)
}

// ReportUncaught routes a synchronously raised fault to the uncaught-fault
// sink. It returns whether the fault was delivered; benign faults are
// absorbed and never reach the sink.
func ReportUncaught(v any) bool {
	if Installed() && Benign(v) {
		suppressedUncaught.Add(1)
		return false
	}
	guardMu.RLock()
	sink := uncaughtSink
	guardMu.RUnlock()
	sink(asFault(v))
	return true
}

// ReportRejection routes an asynchronously surfaced fault to the rejection
// sink. It returns whether the fault was delivered; benign faults are
// absorbed and never reach the sink.
func ReportRejection(v any) bool {
	if Installed() && Benign(v) {
		suppressedRejection.Add(1)
		return false
	}
	guardMu.RLock()
	sink := rejectionSink
	guardMu.RUnlock()
	sink(asFault(v))
	return true
}

// SetConsole rebinds the console sinks the guard interposes on. A nil
// function keeps the corresponding current sink.
func SetConsole(warn, errFn func(args ...any)) {
	guardMu.Lock()
	defer guardMu.Unlock()
	if warn != nil {
		consoleWarnSink = warn
	}
	if errFn != nil {
		consoleErrorSink = errFn
	}
}

// SetUncaughtHandler rebinds the sink for synchronously raised faults.
// A nil handler keeps the current sink.
func SetUncaughtHandler(fn func(*Fault)) {
	guardMu.Lock()
	defer guardMu.Unlock()
	if fn != nil {
		uncaughtSink = fn
	}
}

// SetRejectionHandler rebinds the sink for asynchronously surfaced faults.
// A nil handler keeps the current sink.
func SetRejectionHandler(fn func(*Fault)) {
	guardMu.Lock()
	defer guardMu.Unlock()
	if fn != nil {
		rejectionSink = fn
	}
}

func absorbConsole(args []any) bool {
	if !Installed() {
		return false
	}
	for _, a := range args {
		if Benign(a) {
			suppressedConsole.Add(1)
			return true
		}
	}
	return false
}

func asFault(v any) *Fault {
	if f, ok := v.(*Fault); ok && f != nil {
		return f
	}
	return Capture(v)
}

func defaultConsoleWarn(args ...any) {
	fmt.Fprintln(os.Stderr, append([]any{"warn:"}, args...)...)
}

func defaultConsoleError(args ...any) {
	fmt.Fprintln(os.Stderr, append([]any{"error:"}, args...)...)
}

// defaultFaultSink surfaces an undelivered fault on the console error output.
func defaultFaultSink(f *Fault) {
	ConsoleError(f.Message)
}
