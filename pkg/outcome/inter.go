package outcome

import (
	"fmt"
	"time"
)

// Valued is implemented by outcomes whose success branch carries a value.
type Valued[T any] interface {
	// Value returns the successful value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithCause is implemented by types that can report a failure cause.
type WithCause interface {
	// Cause returns the error if the computation failed
	Cause() error
	// IsFailure returns true if a cause is held
	IsFailure() bool
}

// Variant exposes which branch of the sum type is inhabited and under which
// discipline it was built.
type Variant interface {
	WithCause
	// IsSuccess returns true if the computation succeeded
	IsSuccess() bool
	// Ceiling returns the catching discipline
	Ceiling() Ceiling
}

func render(v Variant) string {
	return fmt.Sprintf("Failure[%s](%v)", v.Ceiling(), v.Cause())
}
