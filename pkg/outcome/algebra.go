package outcome

import "github.com/ib-77/outcome/pkg/outcome/fn"

// Map is the single true pattern match: it invokes exactly one of the two
// handlers, matching the held variant, and returns its result. Every other
// eliminator is definable in terms of it. A panic raised by either handler
// propagates; handlers are merge glue, never captured.
func Map[T, U any](o Outcome[T], transformation func(T) U, causeTransformation func(error) U) U {
	if o.success {
		return transformation(o.value)
	}
	return causeTransformation(o.cause)
}

// OrMapCause returns the value on success, or causeTransformation applied
// to the cause on failure.
func (o Outcome[T]) OrMapCause(causeTransformation func(error) T) T {
	return Map(o, func(v T) T { return v }, causeTransformation)
}

// OrConsumeCause returns (value, true) on success without invoking consumer;
// on failure it feeds the cause to consumer and returns (zero, false).
func (o Outcome[T]) OrConsumeCause(consumer func(error)) (T, bool) {
	if o.success {
		return o.value, true
	}
	consumer(o.cause)
	var zero T
	return zero, false
}

// OrThrow returns the value on success and panics with the cause on failure.
func (o Outcome[T]) OrThrow() T {
	if o.success {
		return o.value
	}
	panic(o.cause)
}

// OrThrowWith behaves like OrThrow but transforms the cause first.
func (o Outcome[T]) OrThrowWith(causeTransformation func(error) error) T {
	if o.success {
		return o.value
	}
	panic(causeTransformation(o.cause))
}

// AndRun executes effect only on success. A captured failure of effect
// replaces the outcome; on a failed receiver the effect never runs and the
// receiver is returned unchanged.
func (o Outcome[T]) AndRun(effect fn.Runnable) Outcome[T] {
	if !o.success {
		return o
	}
	if attempt := Run(o.ceiling, effect); attempt.IsFailure() {
		return Failure[T](o.ceiling, attempt.Cause())
	}
	return o
}

// AndConsume feeds the value to consumer only on success, keeping the value
// when the consumer completes normally.
func (o Outcome[T]) AndConsume(consumer fn.Consumer[T]) Outcome[T] {
	return o.AndRun(func() error { return consumer(o.value) })
}

// AndApply maps the value through mapper on success, capturing the mapper's
// failure per the receiver's ceiling. A failed receiver is re-typed and
// returned without invoking mapper.
func AndApply[T, U any](o Outcome[T], mapper fn.Function[T, U]) Outcome[U] {
	if !o.success {
		return FailureFrom[T, U](o)
	}
	return Get(o.ceiling, func() (U, error) { return mapper(o.value) })
}

// And merges two already-resolved outcomes. Both successes invoke merger;
// otherwise the first failure wins, the receiver's one when both fail, and
// merger is never invoked. A panic raised by merger propagates uncaptured.
func And[T, U, V any](o Outcome[T], other Outcome[U], merger func(T, U) V) Outcome[V] {
	if !o.success {
		return FailureFrom[T, V](o)
	}
	if !other.success {
		return FailureFrom[U, V](other)
	}
	return Success(o.ceiling, merger(o.value, other.value))
}

// Or returns the receiver unchanged on success, never evaluating the
// alternative. On failure it evaluates alternative once: a success replaces
// the outcome and discards the original cause; a second failure yields a
// Failure holding exceptionsMerger(original, new). A panic raised by
// exceptionsMerger propagates uncaptured.
func (o Outcome[T]) Or(alternative fn.Supplier[T], exceptionsMerger func(error, error) error) Outcome[T] {
	if o.success {
		return o
	}
	attempt := Get(o.ceiling, alternative)
	if attempt.success {
		return attempt
	}
	return Failure[T](o.ceiling, exceptionsMerger(o.cause, attempt.cause))
}
