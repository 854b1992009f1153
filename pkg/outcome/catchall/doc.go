// Package catchall binds the outcome algebra to the catch-all discipline:
// factories and lazy combinators capture returned errors and additionally
// recover panics raised by their callbacks, storing them as a
// *outcome.PanicError cause. Merge glue (mergers, cause transformations) is
// still trusted: a panic inside it propagates.
//
// The API mirrors package try; Try[T] and Void here are distinct types, so
// mixing disciplines in one chain is a compile error.
package catchall
