// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small deterministic fixtures and fault assertions for the
//     engine tests.
//   • Record reporter traffic so tests can check which class a fault was
//     reported under.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/report"
	"github.com/katalvlaran/lvmat/scalar"
	"lukechampine.com/frand"
)

// recorder is a report.Reporter that remembers every call.
// LogicError panics with a *report.Fault like report.Logger does.
type recorder struct {
	system   []error
	logic    []error
	user     []error
	warnings []string
}

var _ report.Reporter = (*recorder)(nil)

func (r *recorder) SystemError(err error) { r.system = append(r.system, err) }
func (r *recorder) Error(err error)       { r.user = append(r.user, err) }
func (r *recorder) Warning(msg string)    { r.warnings = append(r.warnings, msg) }
func (r *recorder) LogicError(err error) {
	r.logic = append(r.logic, err)
	panic(&report.Fault{Class: report.LogicFault, Err: err})
}

// lenient is a broken reporter whose LogicError returns; the engine must
// still refuse to continue.
type lenient struct{ recorder }

func (l *lenient) LogicError(err error) { l.logic = append(l.logic, err) }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(r, c, opts...)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// IdentityDense RETURNS the n×n identity or fails the test.
func IdentityDense(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// NewFilledDense builds an r×c matrix from row-major float values.
func NewFilledDense(t *testing.T, r, c int, vals []float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	s := make([]scalar.T, len(vals))
	for k, v := range vals {
		s[k] = scalar.T(v)
	}
	m, err := matrix.NewFromSlice(r, c, s, opts...)
	if err != nil {
		t.Fatalf("NewFromSlice(%d,%d): %v", r, c, err)
	}

	return m
}

// RandIntDense builds an n×n matrix of random integers in [-9, 9].
// Integer entries keep the reference determinant exact enough for Eq-based
// comparison at small n.
func RandIntDense(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m := MustDense(t, n, n)
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			m.Set(i, j, scalar.FromInt(frand.Intn(19)-9))
		}
	}

	return m
}

// MustDet RETURNS det(m) or fails the test.
func MustDet(t *testing.T, m *matrix.Dense) scalar.T {
	t.Helper()
	d, err := m.Determinant()
	if err != nil {
		t.Fatalf("Determinant: %v", err)
	}

	return d
}

// CompareExact ASSERTS dims and every cell (Eq) against want.
func CompareExact(t *testing.T, want [][]float64, m *matrix.Dense) {
	t.Helper()
	if m.Height() != len(want) {
		t.Fatalf("CompareExact: Height = %d; want %d", m.Height(), len(want))
	}
	for i := range want {
		if m.Width() != len(want[i]) {
			t.Fatalf("CompareExact: Width = %d; want %d", m.Width(), len(want[i]))
		}
		for j := range want[i] {
			if v := m.Get(i+1, j+1); !v.Eq(scalar.T(want[i][j])) {
				t.Fatalf("m[%d,%d]=%v; want %v", i+1, j+1, v, want[i][j])
			}
		}
	}
}

// ExpectFault ASSERTS that fn panics with a logic *report.Fault wrapping target.
func ExpectFault(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected logic fault %v, got none", target)
		}
		f, ok := r.(*report.Fault)
		if !ok {
			t.Fatalf("panic value %T (%v); want *report.Fault", r, r)
		}
		if f.Class != report.LogicFault {
			t.Fatalf("fault class %v; want logic", f.Class)
		}
		if !errors.Is(f, target) {
			t.Fatalf("fault %v; want %v", f, target)
		}
	}()
	fn()
}

// mustDense is the benchmark twin of MustDense.
func mustDense(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	m, err := matrix.New(n, n)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

// fillDenseRand fills d with entries in [-1, 1) plus n on the diagonal, which
// keeps benchmark inputs well conditioned.
func fillDenseRand(d *matrix.Dense) {
	n := d.Height()
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			v := scalar.T(frand.Intn(2001)-1000) / 1000
			if i == j {
				v = v.Plus(scalar.FromInt(n))
			}
			d.Set(i, j, v)
		}
	}
}
