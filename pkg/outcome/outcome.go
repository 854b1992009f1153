package outcome

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/outcome/pkg/outcome/fn"
)

// Ceiling is the upper bound on the failures a factory captures as a
// Failure payload rather than letting them escape.
type Ceiling int

const (
	// Checked captures only errors returned by a callback; a panic raised
	// by the callback escapes uncaptured.
	Checked Ceiling = iota
	// CatchAll captures returned errors and additionally recovers panics,
	// storing them as a *PanicError cause.
	CatchAll
)

func (c Ceiling) String() string {
	if c == CatchAll {
		return "catch-all"
	}
	return "checked"
}

// Outcome holds exactly one of: a non-nil success value of type T, or a
// non-nil failure cause. The ceiling it was built under travels with it so
// that every derived outcome captures the same way.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	cause     error
	success   bool
	ceiling   Ceiling
}

// Success returns a successful outcome holding value. A nil value is a
// programming error and panics with ErrNilValue.
func Success[T any](c Ceiling, value T) Outcome[T] {
	if IsNil(value) {
		panic(ErrNilValue)
	}
	return Outcome[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     value,
		success:   true,
		ceiling:   c,
	}
}

// Failure returns a failed outcome holding cause. A nil cause is a
// programming error and panics with ErrNilCause.
func Failure[T any](c Ceiling, cause error) Outcome[T] {
	if IsNil(cause) {
		panic(ErrNilCause)
	}
	return Outcome[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		cause:     cause,
		success:   false,
		ceiling:   c,
	}
}

// Get evaluates supply exactly once and captures its result per the ceiling:
// a returned error becomes a Failure; a nil "success" value is normalized to
// ErrNilValue and classified like any other programming-error-class failure;
// a panic is recovered only under CatchAll.
func Get[T any](c Ceiling, supply fn.Supplier[T]) Outcome[T] {
	if c == CatchAll {
		return getCatchAll(supply)
	}
	value, err := supply()
	return classify(Checked, value, err)
}

func getCatchAll[T any](supply fn.Supplier[T]) (out Outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			out = Failure[T](CatchAll, &PanicError{Value: r, Stack: debug.Stack()})
		}
	}()
	value, err := supply()
	return classify(CatchAll, value, err)
}

func classify[T any](c Ceiling, value T, err error) Outcome[T] {
	if err != nil {
		return Failure[T](c, err)
	}
	if IsNil(value) {
		if c == CatchAll {
			return Failure[T](c, ErrNilValue)
		}
		panic(ErrNilValue)
	}
	return Success(c, value)
}

// FailureFrom re-types a failed outcome to a new payload type, preserving
// cause, ceiling and debug metadata. Sound because a failure never holds a
// value; calling it on a success panics.
func FailureFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	if from.success {
		panic("outcome: FailureFrom applied to a success")
	}
	return Outcome[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		cause:     from.cause,
		success:   false,
		ceiling:   from.ceiling,
	}
}

// IsSuccess reports whether the outcome holds a value.
func (o Outcome[T]) IsSuccess() bool {
	return o.success
}

// IsFailure reports whether the outcome holds a cause.
func (o Outcome[T]) IsFailure() bool {
	return !o.success
}

// Value returns the held value, or the zero value on failure.
func (o Outcome[T]) Value() T {
	return o.value
}

// Cause returns the held cause, or nil on success.
func (o Outcome[T]) Cause() error {
	return o.cause
}

// Ceiling returns the catching discipline the outcome was built under.
func (o Outcome[T]) Ceiling() Ceiling {
	return o.ceiling
}

// CreatedAt is the construction time (UTC). Debug metadata only.
func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

// ID identifies this instance. Debug metadata only.
func (o Outcome[T]) ID() uuid.UUID {
	return o.id
}

// Equal reports structural equality: same ceiling, same variant and
// deep-equal payloads. Debug metadata does not participate.
func (o Outcome[T]) Equal(other Outcome[T]) bool {
	if o.ceiling != other.ceiling || o.success != other.success {
		return false
	}
	if o.success {
		return deepEqual(o.value, other.value)
	}
	return o.cause == other.cause || deepEqual(o.cause, other.cause)
}

// String renders a debug form. Never use it for program logic.
func (o Outcome[T]) String() string {
	if o.success {
		return fmt.Sprintf("Success(%v)", o.value)
	}
	return render(o)
}
