package outcome

import (
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/outcome/pkg/outcome/fn"
)

// Void is the payload-free dual of Outcome, used to sequence side-effecting
// steps before producing a value.
type Void struct {
	id        uuid.UUID
	createdAt time.Time
	cause     error
	success   bool
	ceiling   Ceiling
}

// Complete returns a successful void outcome.
func Complete(c Ceiling) Void {
	return Void{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		success:   true,
		ceiling:   c,
	}
}

// Failed returns a failed void outcome holding cause. A nil cause is a
// programming error and panics with ErrNilCause.
func Failed(c Ceiling, cause error) Void {
	if IsNil(cause) {
		panic(ErrNilCause)
	}
	return Void{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		cause:     cause,
		success:   false,
		ceiling:   c,
	}
}

// Run executes effect exactly once and captures its failure per the ceiling,
// the way Get does for suppliers.
func Run(c Ceiling, effect fn.Runnable) Void {
	if c == CatchAll {
		return runCatchAll(effect)
	}
	if err := effect(); err != nil {
		return Failed(Checked, err)
	}
	return Complete(Checked)
}

func runCatchAll(effect fn.Runnable) (out Void) {
	defer func() {
		if r := recover(); r != nil {
			out = Failed(CatchAll, &PanicError{Value: r, Stack: debug.Stack()})
		}
	}()
	if err := effect(); err != nil {
		return Failed(CatchAll, err)
	}
	return Complete(CatchAll)
}

// IsSuccess reports whether the void outcome completed.
func (v Void) IsSuccess() bool {
	return v.success
}

// IsFailure reports whether the void outcome holds a cause.
func (v Void) IsFailure() bool {
	return !v.success
}

// Cause returns the held cause, or nil on success.
func (v Void) Cause() error {
	return v.cause
}

// Ceiling returns the catching discipline the void outcome was built under.
func (v Void) Ceiling() Ceiling {
	return v.ceiling
}

// CreatedAt is the construction time (UTC). Debug metadata only.
func (v Void) CreatedAt() time.Time {
	return v.createdAt
}

// ID identifies this instance. Debug metadata only.
func (v Void) ID() uuid.UUID {
	return v.id
}

// AndGet evaluates supply on success, capturing per the ceiling; a failed
// receiver short-circuits into a value-bearing failure with the original
// cause, and supply is never invoked.
func AndGet[T any](v Void, supply fn.Supplier[T]) Outcome[T] {
	if !v.success {
		return Outcome[T]{
			id:        v.id,
			createdAt: v.createdAt,
			cause:     v.cause,
			success:   false,
			ceiling:   v.ceiling,
		}
	}
	return Get(v.ceiling, supply)
}

// AndRun executes effect only on success; a failed receiver is returned
// unchanged without invoking effect.
func (v Void) AndRun(effect fn.Runnable) Void {
	if !v.success {
		return v
	}
	return Run(v.ceiling, effect)
}

// Or returns the receiver on success; on failure it runs alternative once
// and returns that attempt, whatever it holds. Unlike the value-bearing Or
// there is no cause-merging form: a failed alternative replaces the
// original cause.
func (v Void) Or(alternative fn.Runnable) Void {
	if v.success {
		return v
	}
	return Run(v.ceiling, alternative)
}

// IfFailed feeds the cause to consumer on failure, as a pure side effect,
// and returns the receiver either way.
func (v Void) IfFailed(consumer func(error)) Void {
	if !v.success {
		consumer(v.cause)
	}
	return v
}

// MapVoid invokes exactly one of the two handlers, matching the held
// variant, and returns its result.
func MapVoid[U any](v Void, onSuccess func() U, causeTransformation func(error) U) U {
	if v.success {
		return onSuccess()
	}
	return causeTransformation(v.cause)
}

// OrThrow returns on success and panics with the cause on failure.
func (v Void) OrThrow() {
	if !v.success {
		panic(v.cause)
	}
}

// Equal reports structural equality: same ceiling, same variant and
// deep-equal causes. Debug metadata does not participate.
func (v Void) Equal(other Void) bool {
	if v.ceiling != other.ceiling || v.success != other.success {
		return false
	}
	if v.success {
		return true
	}
	return v.cause == other.cause || deepEqual(v.cause, other.cause)
}

// String renders a debug form. Never use it for program logic.
func (v Void) String() string {
	if v.success {
		return "Success()"
	}
	return render(v)
}
