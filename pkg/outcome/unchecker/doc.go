// Package unchecker adapts error-returning callbacks into contexts that
// tolerate only panics.
//
// An Unchecker holds a configured wrapping rule. Its eager operations (Call,
// GetUsing) run the callback immediately and panic with the wrapped error
// when it fails; the Wrap* operations return a callback of the plain,
// never-failing shape that applies the same rule lazily on each invocation.
// A panic raised by the callback itself is already unchecked and propagates
// unchanged.
//
// Two canonical instances are preconfigured: IO for I/O failures and URI
// for malformed-input failures.
package unchecker
