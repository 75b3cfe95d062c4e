// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/report"
	"github.com/katalvlaran/lvmat/scalar"
	"github.com/stretchr/testify/require"
)

// TestNewZeroFilled checks dimensions and that every cell starts at Zero.
func TestNewZeroFilled(t *testing.T) {
	for _, tc := range []struct{ h, w int }{{1, 1}, {1, 2}, {2, 1}, {3, 4}, {5, 5}} {
		m := MustDense(t, tc.h, tc.w)
		require.Equal(t, tc.h, m.Height())
		require.Equal(t, tc.w, m.Width())
		m.Do(func(row, col int, v scalar.T) bool {
			require.True(t, v.Eq(scalar.Zero), "(%d,%d)=%v", row, col, v)
			return true
		})
	}
}

// TestNewInvalidDimensions ensures non-positive shapes are logic faults.
func TestNewInvalidDimensions(t *testing.T) {
	ExpectFault(t, matrix.ErrInvalidDimensions, func() { _, _ = matrix.New(0, 5) })
	ExpectFault(t, matrix.ErrInvalidDimensions, func() { _, _ = matrix.New(5, 0) })
	ExpectFault(t, matrix.ErrInvalidDimensions, func() { _, _ = matrix.NewIdentity(-1) })
}

// TestNewAllocationFailure checks that an unsatisfiable grid is a reported
// system fault returned as an error, with no matrix handed out.
func TestNewAllocationFailure(t *testing.T) {
	rec := &recorder{}
	m, err := matrix.New(4, 4, matrix.WithMaxCells(15), matrix.WithReporter(rec))
	require.Nil(t, m)
	require.ErrorIs(t, err, matrix.ErrAllocation)
	require.Len(t, rec.system, 1)
	require.Empty(t, rec.logic)

	m, err = matrix.New(math.MaxInt, 2, matrix.WithReporter(rec))
	require.Nil(t, m)
	require.ErrorIs(t, err, matrix.ErrAllocation)

	id, err := matrix.NewIdentity(8, matrix.WithMaxCells(63), matrix.WithReporter(rec))
	require.Nil(t, id)
	require.ErrorIs(t, err, matrix.ErrAllocation)
	require.Len(t, rec.system, 3)
}

// TestIdentity verifies One on the diagonal and Zero elsewhere.
func TestIdentity(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7} {
		m := IdentityDense(t, n)
		for i := 1; i <= n; i++ {
			for j := 1; j <= n; j++ {
				want := scalar.Zero
				if i == j {
					want = scalar.One
				}
				require.True(t, m.Get(i, j).Eq(want), "n=%d (%d,%d)", n, i, j)
			}
		}
	}

	want := MustDense(t, 3, 3)
	want.Set(1, 1, scalar.One)
	want.Set(2, 2, scalar.One)
	want.Set(3, 3, scalar.One)
	require.True(t, matrix.Equal(want, IdentityDense(t, 3)))
}

// TestSetGet validates Set followed by Get on 1-based corners.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	m.Set(1, 1, 1.5)
	m.Set(2, 3, 7.89)
	require.Equal(t, scalar.T(1.5), m.Get(1, 1))
	require.Equal(t, scalar.T(7.89), m.Get(2, 3))
	require.Equal(t, scalar.Zero, m.Get(1, 3))
}

// TestGetSetOutOfRange ensures row/col 0 and past-the-end are logic faults.
func TestGetSetOutOfRange(t *testing.T) {
	rec := &recorder{}
	m := MustDense(t, 2, 3, matrix.WithReporter(rec))

	for _, idx := range [][2]int{{0, 1}, {1, 0}, {3, 1}, {1, 4}, {-1, 2}} {
		ExpectFault(t, matrix.ErrOutOfRange, func() { _ = m.Get(idx[0], idx[1]) })
		ExpectFault(t, matrix.ErrOutOfRange, func() { m.Set(idx[0], idx[1], 1) })
	}
	require.Len(t, rec.logic, 10)
	require.Contains(t, rec.logic[0].Error(), "Dense.Get(0,1)")
	require.Contains(t, rec.logic[1].Error(), "Dense.Set(0,1)")
}

// TestFaultDoesNotContinueWithLenientReporter guards against a reporter
// whose LogicError returns: the call must still not produce a value.
func TestFaultDoesNotContinueWithLenientReporter(t *testing.T) {
	rep := &lenient{}
	m := MustDense(t, 2, 2, matrix.WithReporter(rep))

	ExpectFault(t, matrix.ErrOutOfRange, func() { _ = m.Get(3, 3) })
	require.Len(t, rep.logic, 1)
}

// TestFaultRecoveredAtBoundary shows a host stopping a logic fault with
// report.Recover.
func TestFaultRecoveredAtBoundary(t *testing.T) {
	m := MustDense(t, 1, 1)
	read := func() (v scalar.T, err error) {
		defer report.Recover(&err)
		return m.Get(2, 1), nil
	}
	_, err := read()
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.True(t, report.IsLogicFault(err))
}

// TestSetNonFinite checks the finite-only numeric policy.
func TestSetNonFinite(t *testing.T) {
	m := MustDense(t, 1, 1)
	ExpectFault(t, matrix.ErrNaNInf, func() { m.Set(1, 1, scalar.T(math.NaN())) })
	ExpectFault(t, matrix.ErrNaNInf, func() { m.Set(1, 1, scalar.T(math.Inf(1))) })

	loose := MustDense(t, 1, 1, matrix.WithValidateFinite(false))
	loose.Set(1, 1, scalar.T(math.Inf(1)))
	require.True(t, math.IsInf(loose.Get(1, 1).Float64(), 1))
}

// TestNewFromSlice covers row-major fill and its contract checks.
func TestNewFromSlice(t *testing.T) {
	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)

	ExpectFault(t, matrix.ErrDimensionMismatch, func() {
		_, _ = matrix.NewFromSlice(2, 2, []scalar.T{1, 2, 3})
	})
	ExpectFault(t, matrix.ErrNaNInf, func() {
		_, _ = matrix.NewFromSlice(1, 2, []scalar.T{1, scalar.T(math.NaN())})
	})
}

// TestCloneIndependence ensures Clone returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 0, 0, 2})
	clone, err := m.Clone()
	require.NoError(t, err)

	clone.Set(1, 1, 3)
	require.Equal(t, scalar.T(1), m.Get(1, 1))
	require.Equal(t, scalar.T(3), clone.Get(1, 1))
}

// TestReleaseAndUseAfterRelease covers the nil-safe release and later access.
func TestReleaseAndUseAfterRelease(t *testing.T) {
	var nilM *matrix.Dense
	require.NotPanics(t, nilM.Release)

	m := MustDense(t, 2, 2)
	m.Release()
	require.NotPanics(t, m.Release)
	ExpectFault(t, matrix.ErrReleased, func() { _ = m.Get(1, 1) })
	ExpectFault(t, matrix.ErrReleased, func() { _ = m.Width() })
	ExpectFault(t, matrix.ErrNilMatrix, func() { _ = nilM.Height() })
	require.Equal(t, "", m.String())
}

// TestStringOutput checks the diagnostic dump format.
func TestStringOutput(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4.5})
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}

// TestDoStopsEarly verifies visitor order and early exit.
func TestDoStopsEarly(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	var seen []scalar.T
	m.Do(func(row, col int, v scalar.T) bool {
		seen = append(seen, v)
		return len(seen) < 3
	})
	require.Equal(t, []scalar.T{1, 2, 3}, seen)
}

// TestFaultErrorsAreMatchable checks the wrapped sentinel chain.
func TestFaultErrorsAreMatchable(t *testing.T) {
	m := MustDense(t, 1, 1)
	var err error
	func() {
		defer report.Recover(&err)
		m.Set(1, 2, 0)
	}()
	var f *report.Fault
	require.True(t, errors.As(err, &f))
	require.Equal(t, report.LogicFault, f.Class)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
