// Package try binds the outcome algebra to the checked discipline: factories
// and lazy combinators capture only errors returned by their callbacks, so a
// panic raised inside a callback always escapes uncaptured. Use the catchall
// package when panics must be captured too.
//
// Try[T] is the value-bearing variant, Void the payload-free one for
// sequencing side effects. Same-type combinators are methods; combinators
// that change the payload type (AndApply, And, Map, AndGet) are free
// functions of this package.
package try
