package sam

import (
	"errors"
	"fmt"
)

// Common automaton errors
var (
	// ErrFrozen indicates Extend was called on a finalized automaton.
	// Call Reopen to re-enter the mutable phase.
	ErrFrozen = errors.New("suffix automaton is frozen")

	// ErrNotFinalized indicates a query that depends on terminal marks
	// (IsSuffix) was issued before Finalize.
	ErrNotFinalized = errors.New("suffix automaton not finalized")
)

// ValidationError reports a structural invariant violation found by
// Validate, with the offending state attached.
type ValidationError struct {
	StateID StateID
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("suffix automaton state %d: %s", e.StateID, e.Message)
}
