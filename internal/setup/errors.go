package setup

import "errors"

// ErrCancelled reports that the user backed out of a prompt (Escape or
// Ctrl+C). Flows treat it as a clean abort: nothing is mutated, nothing
// is saved.
var ErrCancelled = errors.New("cancelled")

// isCancel checks if the error is a user abort
func isCancel(err error) bool {
	return errors.Is(err, ErrCancelled)
}
