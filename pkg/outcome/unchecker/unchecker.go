package unchecker

import "github.com/ib-77/outcome/pkg/outcome/fn"

// Unchecker rethrows failures of a specific shape as panics carrying a
// wrapped error.
type Unchecker struct {
	wrap func(error) error
}

// WrappingWith returns an Unchecker applying wrap to every error it
// rethrows.
func WrappingWith(wrap func(error) error) Unchecker {
	return Unchecker{wrap: wrap}
}

// IO rethrows I/O errors wrapped in *UncheckedIOError.
var IO = WrappingWith(func(err error) error {
	return &UncheckedIOError{Err: err}
})

// URI rethrows syntax errors of values expected to be well formed, wrapped
// in *VerifyError.
var URI = WrappingWith(func(err error) error {
	return &VerifyError{Err: err}
})

// Call runs runnable immediately, panicking with the wrapped error when it
// returns one.
func (u Unchecker) Call(runnable fn.Runnable) {
	if err := runnable(); err != nil {
		panic(u.wrap(err))
	}
}

// GetUsing evaluates supplier immediately, returning its value or panicking
// with the wrapped error.
func GetUsing[T any](u Unchecker, supplier fn.Supplier[T]) T {
	value, err := supplier()
	if err != nil {
		panic(u.wrap(err))
	}
	return value
}

// WrapRunnable returns a callback performing the same wrapping lazily, once
// per invocation.
func (u Unchecker) WrapRunnable(runnable fn.Runnable) func() {
	return func() {
		u.Call(runnable)
	}
}

// WrapSupplier returns a never-failing supplier that panics with the
// wrapped error instead.
func WrapSupplier[T any](u Unchecker, supplier fn.Supplier[T]) func() T {
	return func() T {
		return GetUsing(u, supplier)
	}
}

// WrapFunction returns a never-failing function that panics with the
// wrapped error instead.
func WrapFunction[T, U any](u Unchecker, function fn.Function[T, U]) func(T) U {
	return func(t T) U {
		return GetUsing(u, func() (U, error) { return function(t) })
	}
}

// WrapPredicate returns a never-failing predicate that panics with the
// wrapped error instead.
func WrapPredicate[T any](u Unchecker, predicate fn.Predicate[T]) func(T) bool {
	return func(t T) bool {
		return GetUsing(u, func() (bool, error) { return predicate(t) })
	}
}
