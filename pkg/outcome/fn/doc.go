// Package fn defines the callback types consumed by the outcome packages.
//
// Each type mirrors a familiar single-method callback (supplier, function,
// consumer, runnable, predicate, comparator and their binary variants) but
// declares failure through an error return instead of being restricted to
// a never-failing signature.
//
// Composition operators (AndThen, Compose, And, Or, Negate, Reversed,
// ThenComparing) behave like their standard counterparts and short-circuit
// on the first returned error.
package fn
