package diag

import "errors"

var (
	// ErrCheckTimeout indicates a diagnostics check timed out.
	ErrCheckTimeout = errors.New("diag: check timeout")

	// ErrCheckerNotFound indicates a checker was not found.
	ErrCheckerNotFound = errors.New("diag: checker not found")

	// ErrNilManager indicates a session checker was created without a manager.
	ErrNilManager = errors.New("diag: manager is nil")
)
