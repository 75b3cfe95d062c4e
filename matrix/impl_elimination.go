// SPDX-License-Identifier: MIT
// Package matrix: elimination kernels (Triangularize, Diagonalize,
// Determinant) built on Gaussian elimination with row pivoting.
//
// Purpose:
//   - Reduce a square matrix in place while preserving its determinant.
//   - Read the determinant off the diagonal of a reduced clone.
//
// Notes:
//   - Columns are eliminated from the bottom-right corner upward: for each
//     trailing index src the entries above (src,src) are cleared, so the
//     result has only Eq-zero entries above the main diagonal.
//   - A row swap flips the determinant's sign; negating the new pivot row flips
//     it back, so no sign accumulator is needed and the product of the final
//     diagonal is the determinant.
//   - Near-zero detection always goes through scalar.Eq (Epsilon), never ==.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmat/report"
	"github.com/katalvlaran/lvmat/scalar"
)

// Operation name constants for unified error wrapping.
const (
	opTriangularize = "Triangularize"
	opDiagonalize   = "Diagonalize"
	opDiagonalized  = "Diagonalized"
	opDeterminant   = "Determinant"
)

// warnNoPivot is the warning emitted when a column holds no usable pivot.
const warnNoPivot = "Dense.Triangularize: no pivot in column %d, matrix is singular"

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// mustSquare raises a logic fault unless m is a live square matrix.
func (m *Dense) mustSquare(tag string) {
	if err := ValidateSquare(m); err != nil {
		var r report.Reporter
		if m != nil {
			r = m.opts.reporter
		}
		raise(r, matrixErrorf(tag, err))
	}
}

// ---------- row primitives (1-based rows, no bounds checks) ----------

// row returns the backing slice of row i; writes go to the matrix.
func (m *Dense) row(i int) []scalar.T {
	return m.data[(i-1)*m.w : i*m.w]
}

func (m *Dense) swapRows(i, j int) {
	if i == j {
		return
	}
	ri, rj := m.row(i), m.row(j)
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

func (m *Dense) negateRow(i int) {
	r := m.row(i)
	for k, e := range r {
		r[k] = e.Neg()
	}
}

// subScaledRow performs row(dest) -= c × row(src) and then stores an exact
// Zero at (dest, col), the entry the step is meant to clear.
func (m *Dense) subScaledRow(dest, src, col int, c scalar.T) {
	rs, rd := m.row(src), m.row(dest)
	for k, e := range rs {
		rd[k] = rd[k].Minus(e.Times(c))
	}
	rd[col-1] = scalar.Zero
}

// findPivot scans rows src, src-1, …, 1 and returns the first whose entry in
// column src is not Eq-zero, or 0 when the column has none.
func (m *Dense) findPivot(src int) int {
	for r := src; r >= 1; r-- {
		if !m.data[m.offset(r, src)].IsZero() {
			return r
		}
	}

	return 0
}

// ---------- kernels ----------

// Triangularize reduces m in place so that every entry above the main
// diagonal is Eq-zero, preserving the determinant.
// MAIN DESCRIPTION:
//   - Gaussian elimination from the bottom-right corner upward with row
//     pivoting and sign compensation.
//
// Implementation:
//   - Stage 1: for src = n..2 pick the first row r in src..1 with a non-zero
//     entry in column src; if r != src swap rows r,src and negate row src.
//   - Stage 2: for dest = 1..src-1 with a non-zero (dest,src) subtract
//     (a[dest][src]/a[src][src]) × row(src) from row(dest).
//   - A column without a pivot is left as is and reported as a warning; its
//     diagonal entry is Zero, so the determinant is Zero downstream.
//
// Faults:
//   - ErrNonSquare (logic fault) for non-square input.
//
// Complexity:
//   - Time O(n^3), Space O(1).
func (m *Dense) Triangularize() {
	m.mustSquare(opTriangularize)
	m.triangularize()
}

func (m *Dense) triangularize() {
	var src, dest, p int
	var pivot, v scalar.T
	for src = m.h; src >= 2; src-- {
		p = m.findPivot(src)
		if p == 0 {
			m.opts.reporter.Warning(fmt.Sprintf(warnNoPivot, src))
			continue
		}
		if p != src {
			m.swapRows(p, src)
			m.negateRow(src)
		}
		pivot = m.data[m.offset(src, src)]
		for dest = 1; dest < src; dest++ {
			v = m.data[m.offset(dest, src)]
			if v.IsZero() {
				continue
			}
			m.subScaledRow(dest, src, src, v.Div(pivot))
		}
	}
}

// Diagonalize reduces m in place to a diagonal matrix with the same
// determinant.
// Implementation:
//   - Stage 1: Triangularize.
//   - Stage 2: for p = n-1..1 clear every non-zero entry below (p,p) in column
//     p by subtracting multiples of row p.
//   - When (p,p) is Eq-zero the matrix is singular and the determinant is
//     already Zero; the entries below it are cleared directly.
//
// Behavior highlights:
//   - Idempotent: a diagonal input is left unchanged.
//   - IsDiagonal() holds afterwards for every square input.
//
// Faults:
//   - ErrNonSquare (logic fault) for non-square input.
//
// Complexity:
//   - Time O(n^3), Space O(1).
func (m *Dense) Diagonalize() {
	m.mustSquare(opDiagonalize)
	m.triangularize()

	var p, dest int
	var pivot, v scalar.T
	for p = m.h - 1; p >= 1; p-- {
		pivot = m.data[m.offset(p, p)]
		for dest = p + 1; dest <= m.h; dest++ {
			v = m.data[m.offset(dest, p)]
			if v.IsZero() {
				continue
			}
			if pivot.IsZero() {
				m.data[m.offset(dest, p)] = scalar.Zero
				continue
			}
			m.subScaledRow(dest, p, p, v.Div(pivot))
		}
	}
}

// Diagonalized returns a diagonalized copy of m; m is not modified.
// Ownership of the copy passes to the caller.
//
// Errors:
//   - ErrAllocation (system fault) when the copy cannot be allocated.
func (m *Dense) Diagonalized() (*Dense, error) {
	m.mustSquare(opDiagonalized)
	c, err := m.Clone()
	if err != nil {
		return nil, matrixErrorf(opDiagonalized, err)
	}
	c.Diagonalize()

	return c, nil
}

// Determinant returns det(m) without modifying m.
// MAIN DESCRIPTION:
//   - Clone, triangularize the clone, fold the diagonal product from One.
//
// Behavior highlights:
//   - The clone is released on every return path.
//   - A singular matrix yields (Zero, nil); a failed clone yields
//     (Zero, ErrAllocation), so the two are never confused.
//
// Faults:
//   - ErrNonSquare (logic fault) for non-square input.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the clone.
func (m *Dense) Determinant() (scalar.T, error) {
	m.mustSquare(opDeterminant)
	c, err := m.Clone()
	if err != nil {
		return scalar.Zero, matrixErrorf(opDeterminant, err)
	}
	defer c.Release()

	c.triangularize()
	det := scalar.One
	for i := 1; i <= c.w; i++ {
		det = det.Times(c.data[c.offset(i, i)])
	}

	return det, nil
}
