package try

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunAndGet_ShortCircuits(t *testing.T) {
	t.Parallel()

	invoked := false
	got := AndGet(
		Run(func() error { return errIO }),
		func() (int, error) {
			invoked = true
			return 1, nil
		})
	assert.False(t, invoked)
	assert.True(t, got.Equal(Failure[int](errIO)))
}

func TestRunAndGet_Success(t *testing.T) {
	t.Parallel()

	got := AndGet(
		Run(func() error { return nil }),
		func() (int, error) { return 1, nil })
	assert.True(t, got.Equal(Success(1)))
}

func TestVoidFactories(t *testing.T) {
	t.Parallel()

	assert.True(t, VoidSuccess().IsSuccess())
	assert.True(t, VoidFailure(errIO).IsFailure())
	assert.Equal(t, error(errIO), VoidFailure(errIO).Cause())
}

func TestVoidAndRunSequencing(t *testing.T) {
	t.Parallel()

	var order []string
	got := Run(func() error {
		order = append(order, "write")
		return nil
	}).AndRun(func() error {
		order = append(order, "flush")
		return nil
	})
	assert.True(t, got.IsSuccess())
	assert.Equal(t, []string{"write", "flush"}, order)
}

func TestVoidOr_SingleAlternative(t *testing.T) {
	t.Parallel()

	got := VoidFailure(errIO).Or(func() error { return nil })
	assert.True(t, got.IsSuccess())

	errOther := errors.New("other")
	got = VoidFailure(errIO).Or(func() error { return errOther })
	assert.True(t, got.Equal(VoidFailure(errOther)))
}

func TestVoidIfFailed(t *testing.T) {
	t.Parallel()

	var seen error
	VoidFailure(errIO).IfFailed(func(err error) { seen = err })
	assert.Equal(t, error(errIO), seen)
}

func TestVoidMapEliminator(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ok", MapVoid(VoidSuccess(),
		func() string { return "ok" },
		func(error) string { return "ko" }))
	assert.Equal(t, "ko", MapVoid(VoidFailure(errIO),
		func() string { return "ok" },
		func(error) string { return "ko" }))
}

func TestVoidOrThrow(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { VoidSuccess().OrThrow() })
	assert.PanicsWithValue(t, error(errIO), func() { VoidFailure(errIO).OrThrow() })
}
