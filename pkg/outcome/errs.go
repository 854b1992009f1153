package outcome

import (
	"errors"
	"fmt"
)

// ErrNilValue marks a computation that "succeeded" with a nil value. It is
// a programming-error-class failure: captured under CatchAll, escaping as a
// panic under Checked.
var ErrNilValue = errors.New("nil value where a success value is required")

// ErrNilCause marks a failure constructed without a cause.
var ErrNilCause = errors.New("nil cause where a failure cause is required")

// PanicError carries a panic recovered from a lazy callback under the
// CatchAll ceiling.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
