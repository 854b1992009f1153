package fn

import "cmp"

// AndThen runs r, then next. The first error stops the sequence.
func (r Runnable) AndThen(next Runnable) Runnable {
	return func() error {
		if err := r(); err != nil {
			return err
		}
		return next()
	}
}

// AndThen feeds the value to c, then to next. The first error stops the
// sequence.
func (c Consumer[T]) AndThen(next Consumer[T]) Consumer[T] {
	return func(t T) error {
		if err := c(t); err != nil {
			return err
		}
		return next(t)
	}
}

// AndThen applies f, then after, failing on the first error.
func AndThen[T, U, V any](f Function[T, U], after Function[U, V]) Function[T, V] {
	return func(t T) (V, error) {
		u, err := f(t)
		if err != nil {
			var zero V
			return zero, err
		}
		return after(u)
	}
}

// Compose applies before, then f, failing on the first error.
func Compose[T, U, V any](f Function[U, V], before Function[T, U]) Function[T, V] {
	return AndThen(before, f)
}

// And is a short-circuiting logical AND of two predicates. The second
// predicate is not evaluated when the first one fails or returns false.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	return func(t T) (bool, error) {
		ok, err := p(t)
		if err != nil || !ok {
			return false, err
		}
		return other(t)
	}
}

// Or is a short-circuiting logical OR of two predicates. The second
// predicate is not evaluated when the first one fails or returns true.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	return func(t T) (bool, error) {
		ok, err := p(t)
		if err != nil || ok {
			return ok, err
		}
		return other(t)
	}
}

// Negate inverts the predicate. Failures pass through unchanged.
func (p Predicate[T]) Negate() Predicate[T] {
	return func(t T) (bool, error) {
		ok, err := p(t)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}

// Reversed imposes the reverse ordering.
func (c Comparator[T]) Reversed() Comparator[T] {
	return func(a, b T) (int, error) {
		return c(b, a)
	}
}

// ThenComparing breaks ties with other. A failure of either comparator
// fails the composed one.
func (c Comparator[T]) ThenComparing(other Comparator[T]) Comparator[T] {
	return func(a, b T) (int, error) {
		r, err := c(a, b)
		if err != nil || r != 0 {
			return r, err
		}
		return other(a, b)
	}
}

// ComparingBy orders values by an extracted key.
func ComparingBy[T any, K cmp.Ordered](key Function[T, K]) Comparator[T] {
	return func(a, b T) (int, error) {
		ka, err := key(a)
		if err != nil {
			return 0, err
		}
		kb, err := key(b)
		if err != nil {
			return 0, err
		}
		return cmp.Compare(ka, kb), nil
	}
}
