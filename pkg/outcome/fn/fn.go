package fn

// Runnable runs a side effect that may fail.
type Runnable func() error

// Supplier produces a value or fails.
type Supplier[T any] func() (T, error)

// Function maps T to U or fails.
type Function[T, U any] func(T) (U, error)

// BiFunction maps a pair (T, U) to V or fails.
type BiFunction[T, U, V any] func(T, U) (V, error)

// Consumer accepts a value, possibly failing.
type Consumer[T any] func(T) error

// BiConsumer accepts a pair of values, possibly failing.
type BiConsumer[T, U any] func(T, U) error

// Predicate tests a value or fails.
type Predicate[T any] func(T) (bool, error)

// BiPredicate tests a pair of values or fails.
type BiPredicate[T, U any] func(T, U) (bool, error)

// Comparator orders two values, returning a negative, zero or positive
// result, or fails.
type Comparator[T any] func(T, T) (int, error)
