package outcome

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestGet_RoundTrip(t *testing.T) {
	t.Parallel()

	got := Get(Checked, func() (int, error) { return 5, nil })
	assert.True(t, got.Equal(Success(Checked, 5)))

	got = Get(Checked, func() (int, error) { return 0, errBoom })
	assert.True(t, got.Equal(Failure[int](Checked, errBoom)))
}

func TestGet_EvaluatesOnce(t *testing.T) {
	t.Parallel()

	calls := 0
	Get(Checked, func() (int, error) {
		calls++
		return 1, nil
	})
	assert.Equal(t, 1, calls)
}

func TestGet_NilValueEscapesChecked(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, ErrNilValue, func() {
		Get(Checked, func() (*int, error) { return nil, nil })
	})
}

func TestGet_NilValueCapturedCatchAll(t *testing.T) {
	t.Parallel()

	got := Get(CatchAll, func() (*int, error) { return nil, nil })
	require.True(t, got.IsFailure())
	assert.ErrorIs(t, got.Cause(), ErrNilValue)
}

func TestGet_PanicEscapesChecked(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		Get(Checked, func() (int, error) { panic("broken invariant") })
	})
}

func TestGet_PanicCapturedCatchAll(t *testing.T) {
	t.Parallel()

	got := Get(CatchAll, func() (int, error) { panic(errBoom) })
	require.True(t, got.IsFailure())

	var pe *PanicError
	require.ErrorAs(t, got.Cause(), &pe)
	assert.Equal(t, errBoom, pe.Value)
	assert.ErrorIs(t, got.Cause(), errBoom)
	assert.NotEmpty(t, pe.Stack)
}

func TestSuccess_NilValuePanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, ErrNilValue, func() {
		Success[*int](Checked, nil)
	})
}

func TestFailure_NilCausePanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, ErrNilCause, func() {
		Failure[int](Checked, nil)
	})
}

func TestVariants_ExactlyOneHolds(t *testing.T) {
	t.Parallel()

	s := Success(Checked, 1)
	assert.True(t, s.IsSuccess())
	assert.False(t, s.IsFailure())
	assert.NoError(t, s.Cause())

	f := Failure[int](Checked, errBoom)
	assert.False(t, f.IsSuccess())
	assert.True(t, f.IsFailure())
	assert.Equal(t, errBoom, f.Cause())
	assert.Zero(t, f.Value())
}

func TestMap_InvokesExactlyOne(t *testing.T) {
	t.Parallel()

	onValue, onCause := 0, 0
	got := Map(Success(Checked, 2),
		func(v int) string { onValue++; return "ok" },
		func(err error) string { onCause++; return "ko" })
	assert.Equal(t, "ok", got)
	assert.Equal(t, 1, onValue)
	assert.Equal(t, 0, onCause)

	got = Map(Failure[int](Checked, errBoom),
		func(v int) string { onValue++; return "ok" },
		func(err error) string { onCause++; return "ko" })
	assert.Equal(t, "ko", got)
	assert.Equal(t, 1, onValue)
	assert.Equal(t, 1, onCause)
}

func TestOrMapCause(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, Success(Checked, 7).OrMapCause(func(error) int { return -1 }))
	assert.Equal(t, -1, Failure[int](Checked, errBoom).OrMapCause(func(error) int { return -1 }))
}

func TestOrConsumeCause(t *testing.T) {
	t.Parallel()

	consumed := 0
	v, ok := Success(Checked, 7).OrConsumeCause(func(error) { consumed++ })
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, 0, consumed)

	v, ok = Failure[int](Checked, errBoom).OrConsumeCause(func(err error) {
		consumed++
		assert.Equal(t, errBoom, err)
	})
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, 1, consumed)
}

func TestOrThrow(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, Success(Checked, 3).OrThrow())
	assert.PanicsWithValue(t, errBoom, func() {
		Failure[int](Checked, errBoom).OrThrow()
	})
}

func TestOrThrowWith(t *testing.T) {
	t.Parallel()

	wrapped := errors.New("wrapped")
	assert.PanicsWithValue(t, wrapped, func() {
		Failure[int](Checked, errBoom).OrThrowWith(func(err error) error {
			assert.Equal(t, errBoom, err)
			return wrapped
		})
	})
}

func TestAndRun_FailureShortCircuits(t *testing.T) {
	t.Parallel()

	ran := false
	f := Failure[int](Checked, errBoom)
	got := f.AndRun(func() error { ran = true; return nil })
	assert.True(t, got.Equal(f))
	assert.False(t, ran)
}

func TestAndRun_CapturesEffectFailure(t *testing.T) {
	t.Parallel()

	got := Success(Checked, 1).AndRun(func() error { return errBoom })
	assert.True(t, got.Equal(Failure[int](Checked, errBoom)))

	got = Success(Checked, 1).AndRun(func() error { return nil })
	assert.True(t, got.Equal(Success(Checked, 1)))
}

func TestAndRun_PanicPerCeiling(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		Success(Checked, 1).AndRun(func() error { panic(errBoom) })
	})

	got := Success(CatchAll, 1).AndRun(func() error { panic(errBoom) })
	require.True(t, got.IsFailure())
	assert.ErrorIs(t, got.Cause(), errBoom)
}

func TestAndConsume(t *testing.T) {
	t.Parallel()

	var seen int
	got := Success(Checked, 5).AndConsume(func(v int) error {
		seen = v
		return nil
	})
	assert.True(t, got.Equal(Success(Checked, 5)))
	assert.Equal(t, 5, seen)

	got = Success(Checked, 5).AndConsume(func(int) error { return errBoom })
	assert.True(t, got.Equal(Failure[int](Checked, errBoom)))

	invoked := false
	Failure[int](Checked, errBoom).AndConsume(func(int) error {
		invoked = true
		return nil
	})
	assert.False(t, invoked)
}

func TestAndApply(t *testing.T) {
	t.Parallel()

	got := AndApply(Success(Checked, 1), func(v int) (int, error) { return v + 4, nil })
	assert.True(t, got.Equal(Success(Checked, 5)))

	got = AndApply(Success(Checked, 1), func(int) (int, error) { return 0, errBoom })
	assert.True(t, got.Equal(Failure[int](Checked, errBoom)))

	invoked := false
	retyped := AndApply(Failure[int](Checked, errBoom), func(int) (string, error) {
		invoked = true
		return "", nil
	})
	assert.False(t, invoked)
	assert.True(t, retyped.Equal(Failure[string](Checked, errBoom)))
}

func TestAndApply_NilResultNormalized(t *testing.T) {
	t.Parallel()

	got := AndApply(Success(CatchAll, 1), func(int) (*int, error) { return nil, nil })
	require.True(t, got.IsFailure())
	assert.ErrorIs(t, got.Cause(), ErrNilValue)
}

func TestAnd_FourCombinations(t *testing.T) {
	t.Parallel()

	errOther := errors.New("other")
	mergerCalls := 0
	merger := func(a int, b int) int { mergerCalls++; return a + b }

	got := And(Success(Checked, 2), Success(Checked, 3), merger)
	assert.True(t, got.Equal(Success(Checked, 5)))
	assert.Equal(t, 1, mergerCalls)

	mergerCalls = 0
	got = And(Failure[int](Checked, errBoom), Success(Checked, 3), merger)
	assert.True(t, got.Equal(Failure[int](Checked, errBoom)))

	got = And(Success(Checked, 2), Failure[int](Checked, errOther), merger)
	assert.True(t, got.Equal(Failure[int](Checked, errOther)))

	// left operand wins when both fail
	got = And(Failure[int](Checked, errBoom), Failure[int](Checked, errOther), merger)
	assert.True(t, got.Equal(Failure[int](Checked, errBoom)))

	assert.Equal(t, 0, mergerCalls)
}

func TestAnd_MergerPanicPropagates(t *testing.T) {
	t.Parallel()

	// merge glue is trusted even under the catch-all ceiling
	assert.PanicsWithValue(t, errBoom, func() {
		And(Success(CatchAll, 1), Success(CatchAll, 2), func(int, int) int {
			panic(errBoom)
		})
	})
}

func TestOr_SuccessShortCircuits(t *testing.T) {
	t.Parallel()

	evaluated := false
	got := Success(Checked, 1).Or(func() (int, error) {
		evaluated = true
		return 2, nil
	}, JoinCauses)
	assert.True(t, got.Equal(Success(Checked, 1)))
	assert.False(t, evaluated)
}

func TestOr_RecoversOnAlternativeSuccess(t *testing.T) {
	t.Parallel()

	mergerCalls := 0
	got := Failure[int](Checked, errBoom).Or(
		func() (int, error) { return 6, nil },
		func(e1, e2 error) error { mergerCalls++; return e1 })
	assert.True(t, got.Equal(Success(Checked, 6)))
	assert.Equal(t, 0, mergerCalls)
}

func TestOr_MergesCausesOnDoubleFailure(t *testing.T) {
	t.Parallel()

	errOther := errors.New("other")
	got := Failure[int](Checked, errBoom).Or(
		func() (int, error) { return 0, errOther },
		func(e1, e2 error) error {
			assert.Equal(t, errBoom, e1)
			assert.Equal(t, errOther, e2)
			return e1
		})
	assert.True(t, got.Equal(Failure[int](Checked, errBoom)))
}

func TestOr_MergerPanicPropagates(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, errBoom, func() {
		Failure[int](CatchAll, errBoom).Or(
			func() (int, error) { return 0, errors.New("other") },
			func(error, error) error { panic(errBoom) })
	})
}

func TestFailureFrom(t *testing.T) {
	t.Parallel()

	from := Failure[int](CatchAll, errBoom)
	got := FailureFrom[int, string](from)
	assert.True(t, got.IsFailure())
	assert.Equal(t, errBoom, got.Cause())
	assert.Equal(t, CatchAll, got.Ceiling())
	assert.Equal(t, from.ID(), got.ID())

	assert.Panics(t, func() {
		FailureFrom[int, string](Success(Checked, 1))
	})
}

func TestEqual_CeilingParticipates(t *testing.T) {
	t.Parallel()

	assert.False(t, Success(Checked, 5).Equal(Success(CatchAll, 5)))
	assert.False(t, Failure[int](Checked, errBoom).Equal(Failure[int](CatchAll, errBoom)))
}

func TestEqual_IgnoresDebugMetadata(t *testing.T) {
	t.Parallel()

	a := Success(Checked, 5)
	b := Success(Checked, 5)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.True(t, a.Equal(b))
}

func TestEqual_DistinguishesVariantsAndPayloads(t *testing.T) {
	t.Parallel()

	assert.False(t, Success(Checked, 5).Equal(Success(Checked, 6)))
	assert.False(t, Success(Checked, 5).Equal(Failure[int](Checked, errBoom)))
	assert.False(t, Failure[int](Checked, errBoom).Equal(Failure[int](Checked, errors.New("other"))))
}

func TestString_DebugForm(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Success(5)", Success(Checked, 5).String())
	assert.Equal(t, "Failure[checked](boom)", Failure[int](Checked, errBoom).String())
	assert.Equal(t, "Failure[catch-all](boom)", Failure[int](CatchAll, errBoom).String())
}

func TestOutcomeImplementsVariant(t *testing.T) {
	t.Parallel()

	var v Variant = Success(Checked, 1)
	assert.True(t, v.IsSuccess())

	var w Valued[int] = Success(Checked, 1)
	assert.Equal(t, 1, w.Value())
	assert.False(t, w.CreatedAt().IsZero())
}
