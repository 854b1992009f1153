package try

import (
	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/fn"
)

// Try is a value-bearing outcome under the checked discipline.
type Try[T any] struct {
	res outcome.Outcome[T]
}

func wrap[T any](res outcome.Outcome[T]) Try[T] {
	return Try[T]{res: res}
}

// Get evaluates supply once, capturing a returned error as a failure.
func Get[T any](supply fn.Supplier[T]) Try[T] {
	return wrap(outcome.Get(outcome.Checked, supply))
}

// Success returns a successful Try holding value.
func Success[T any](value T) Try[T] {
	return wrap(outcome.Success(outcome.Checked, value))
}

// Failure returns a failed Try holding cause.
func Failure[T any](cause error) Try[T] {
	return wrap(outcome.Failure[T](outcome.Checked, cause))
}

// Outcome exposes the underlying discipline-tagged outcome.
func (t Try[T]) Outcome() outcome.Outcome[T] {
	return t.res
}

// IsSuccess reports whether the Try holds a value.
func (t Try[T]) IsSuccess() bool {
	return t.res.IsSuccess()
}

// IsFailure reports whether the Try holds a cause.
func (t Try[T]) IsFailure() bool {
	return t.res.IsFailure()
}

// Value returns the held value, or the zero value on failure.
func (t Try[T]) Value() T {
	return t.res.Value()
}

// Cause returns the held cause, or nil on success.
func (t Try[T]) Cause() error {
	return t.res.Cause()
}

// AndRun executes effect only on success; its returned error replaces the
// outcome, while a failed receiver passes through untouched.
func (t Try[T]) AndRun(effect fn.Runnable) Try[T] {
	return wrap(t.res.AndRun(effect))
}

// AndConsume feeds the value to consumer only on success.
func (t Try[T]) AndConsume(consumer fn.Consumer[T]) Try[T] {
	return wrap(t.res.AndConsume(consumer))
}

// Or keeps a success untouched, never evaluating alternative. On failure it
// evaluates alternative once, recovering on its success or merging both
// causes with exceptionsMerger on its failure.
func (t Try[T]) Or(alternative fn.Supplier[T], exceptionsMerger func(error, error) error) Try[T] {
	return wrap(t.res.Or(alternative, exceptionsMerger))
}

// OrMapCause returns the value on success, or causeTransformation applied
// to the cause on failure.
func (t Try[T]) OrMapCause(causeTransformation func(error) T) T {
	return t.res.OrMapCause(causeTransformation)
}

// OrConsumeCause returns (value, true) on success; on failure it feeds the
// cause to consumer and returns (zero, false).
func (t Try[T]) OrConsumeCause(consumer func(error)) (T, bool) {
	return t.res.OrConsumeCause(consumer)
}

// OrThrow returns the value on success and panics with the cause on failure.
func (t Try[T]) OrThrow() T {
	return t.res.OrThrow()
}

// OrThrowWith behaves like OrThrow but transforms the cause first.
func (t Try[T]) OrThrowWith(causeTransformation func(error) error) T {
	return t.res.OrThrowWith(causeTransformation)
}

// Equal reports structural equality of two checked outcomes.
func (t Try[T]) Equal(other Try[T]) bool {
	return t.res.Equal(other.res)
}

func (t Try[T]) String() string {
	return t.res.String()
}

// AndApply maps the value through mapper on success, capturing the mapper's
// returned error; a failed receiver is re-typed without invoking mapper.
func AndApply[T, U any](t Try[T], mapper fn.Function[T, U]) Try[U] {
	return wrap(outcome.AndApply(t.res, mapper))
}

// And merges two already-resolved outcomes; the first failure wins, the
// receiver's one when both fail, and merger runs only on two successes.
func And[T, U, V any](t Try[T], other Try[U], merger func(T, U) V) Try[V] {
	return wrap(outcome.And(t.res, other.res, merger))
}

// Map invokes exactly one of the two handlers, matching the held variant,
// and returns its result.
func Map[T, U any](t Try[T], transformation func(T) U, causeTransformation func(error) U) U {
	return outcome.Map(t.res, transformation, causeTransformation)
}
