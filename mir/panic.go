package mir

import "fmt"

// InvariantViolation is panicked for programmer errors that can never arise
// from a well-formed caller: a handle out of range for the arena it is
// used against, or an attempt to differentiate a digital (port/net) integer
// reference, which is unimplemented by design (analog callers must never
// route these into the differentiator).
type InvariantViolation struct {
	Message string
}

func (e InvariantViolation) Error() string {
	return fmt.Sprintf("mir: invariant violation: %s", e.Message)
}

func violate(format string, args ...interface{}) {
	panic(InvariantViolation{Message: fmt.Sprintf(format, args...)})
}
