package result

import (
	"errors"
	"fmt"
)

// FatalError reports a failure of the hardware collaborator. It is never
// recovered inside the runtime; once returned, the runtime stays poisoned
// and every later entry point returns the same error.
type FatalError struct {
	// Op names the hardware call that failed.
	Op string

	// Err is the underlying failure.
	Err error
}

// Fatal wraps err as a fatal infrastructure error for op.
func Fatal(op string, err error) *FatalError {
	return &FatalError{Op: op, Err: err}
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("fatal: %s: %v", e.Op, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err carries a FatalError.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}
