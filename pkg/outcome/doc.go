// Package outcome defines the shared sum types Outcome[T] and Void, holding
// either the value of a computation that succeeded or the error that made it
// fail, together with the combinator algebra operating on them.
//
// The algebra is implemented once and parameterized by a Ceiling, which
// selects how much a factory captures from a lazy callback: Checked captures
// returned errors only, CatchAll also recovers panics. The packages try and
// catchall bind the algebra to one ceiling each and are the intended entry
// points; this package is for code generic over the discipline.
//
// Highlights:
// - Success/Failure/Get/Complete/Failed/Run: construct Outcome[T] or Void
// - Map: the single pattern match every other eliminator is defined by
// - AndRun/AndConsume/AndApply/And: fail-fast sequencing
// - Or: recovery, attempting an alternative only on failure
// - FailureFrom: re-type a failure across payload types
//
// Outcomes are immutable. Every combinator returns a fresh instance, so
// values can be shared freely across goroutines once constructed.
package outcome
