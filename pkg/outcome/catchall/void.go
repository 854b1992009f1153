package catchall

import (
	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/fn"
)

// Void is a payload-free outcome under the catch-all discipline.
type Void struct {
	res outcome.Void
}

func wrapVoid(res outcome.Void) Void {
	return Void{res: res}
}

// Run executes effect once, capturing a returned error or a recovered panic
// as a failure.
func Run(effect fn.Runnable) Void {
	return wrapVoid(outcome.Run(outcome.CatchAll, effect))
}

// VoidSuccess returns a successful Void.
func VoidSuccess() Void {
	return wrapVoid(outcome.Complete(outcome.CatchAll))
}

// VoidFailure returns a failed Void holding cause.
func VoidFailure(cause error) Void {
	return wrapVoid(outcome.Failed(outcome.CatchAll, cause))
}

// Outcome exposes the underlying discipline-tagged outcome.
func (v Void) Outcome() outcome.Void {
	return v.res
}

// IsSuccess reports whether the Void completed.
func (v Void) IsSuccess() bool {
	return v.res.IsSuccess()
}

// IsFailure reports whether the Void holds a cause.
func (v Void) IsFailure() bool {
	return v.res.IsFailure()
}

// Cause returns the held cause, or nil on success.
func (v Void) Cause() error {
	return v.res.Cause()
}

// AndRun executes effect only on success; a failed receiver passes through
// untouched.
func (v Void) AndRun(effect fn.Runnable) Void {
	return wrapVoid(v.res.AndRun(effect))
}

// Or keeps a success untouched; on failure it runs alternative once and
// returns that attempt. There is no cause-merging form: a failed
// alternative replaces the original cause.
func (v Void) Or(alternative fn.Runnable) Void {
	return wrapVoid(v.res.Or(alternative))
}

// IfFailed feeds the cause to consumer on failure, as a pure side effect.
func (v Void) IfFailed(consumer func(error)) Void {
	return wrapVoid(v.res.IfFailed(consumer))
}

// OrThrow returns on success and panics with the cause on failure.
func (v Void) OrThrow() {
	v.res.OrThrow()
}

// Equal reports structural equality of two catch-all void outcomes.
func (v Void) Equal(other Void) bool {
	return v.res.Equal(other.res)
}

func (v Void) String() string {
	return v.res.String()
}

// AndGet evaluates supply on success; a failed receiver short-circuits into
// a value-bearing failure with the original cause, never invoking supply.
func AndGet[T any](v Void, supply fn.Supplier[T]) Try[T] {
	return wrap(outcome.AndGet(v.res, supply))
}

// MapVoid invokes exactly one of the two handlers, matching the held
// variant, and returns its result.
func MapVoid[U any](v Void, onSuccess func() U, causeTransformation func(error) U) U {
	return outcome.MapVoid(v.res, onSuccess, causeTransformation)
}
