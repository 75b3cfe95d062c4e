// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & 1-based accessors.
//
// Purpose:
//   - Provide a contiguous row-major grid with the explicit index formula
//     (row-1)*width + (col-1).
//   - Enforce the access contract at the public surface: an index outside
//     [1..Height]×[1..Width] is a logic fault that never yields a value.
//   - Construct all-or-nothing: a constructor returns a fully initialized
//     matrix or no matrix at all.
//
// Complexity quicksheet:
//   - New: O(h*w) zero-init; Get/Set: O(1); Clone: O(h*w); Release: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvmat/report"
	"github.com/katalvlaran/lvmat/scalar"
)

// ---------- error context tags ----------

const (
	ctxNew       = "New"       // ctor tag
	ctxIdentity  = "Identity"  // ctor tag
	ctxFromSlice = "FromSlice" // ctor tag
	ctxGet       = "Get"       // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxClone     = "Clone"     // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Behavior highlights:
//   - Stable "Dense.<method>(row,col): <sentinel>" shape; preserves the
//     sentinel via %w for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of scalars.
//   - h,w hold dimensions (height, width), both >= 1 while the matrix is live.
//   - data is a flat buffer of length h*w (offset = (row-1)*w + (col-1)).
//   - opts carries the reporter and numeric policy; Clone shares it.
type Dense struct {
	h, w int
	data []scalar.T
	opts Options
}

var _ fmt.Stringer = (*Dense)(nil)

// allocGrid returns a zeroed buffer for a height×width grid or ErrAllocation.
// Callers have already validated height, width > 0.
func allocGrid(height, width int, o Options) ([]scalar.T, error) {
	if height > math.MaxInt/width {
		return nil, ErrAllocation
	}
	n := height * width
	if n > o.maxCells {
		return nil, ErrAllocation
	}

	return make([]scalar.T, n), nil
}

// newDense is the single construction path shared by every public ctor.
// MAIN DESCRIPTION:
//   - Validate shape (logic fault), allocate (system fault), return.
//
// Implementation:
//   - Stage 1: height,width <= 0 → LogicError(ErrInvalidDimensions).
//   - Stage 2: allocGrid; on failure report SystemError and return nil.
//
// Behavior highlights:
//   - No partially built Dense escapes: on failure the result is nil.
func newDense(tag string, height, width int, o Options) (*Dense, error) {
	if height <= 0 || width <= 0 {
		raise(o.reporter, denseErrorf(tag, height, width, ErrInvalidDimensions))
	}
	data, err := allocGrid(height, width, o)
	if err != nil {
		err = denseErrorf(tag, height, width, err)
		o.reporter.SystemError(err)

		return nil, err
	}

	return &Dense{h: height, w: width, data: data, opts: o}, nil
}

// New creates a height×width matrix with every entry scalar.Zero.
//
// Errors:
//   - ErrAllocation (system fault) when the grid cannot be allocated.
//
// Faults:
//   - ErrInvalidDimensions (logic fault) when height or width is < 1.
//
// Complexity:
//   - Time O(h*w), Space O(h*w).
func New(height, width int, opts ...Option) (*Dense, error) {
	return newDense(ctxNew, height, width, gatherOptions(opts...))
}

// NewIdentity creates the n×n identity: One on the diagonal, Zero elsewhere.
// Fails exactly like New(n, n).
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	m, err := newDense(ctxIdentity, n, n, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}
	for i := 1; i <= n; i++ {
		m.data[m.offset(i, i)] = scalar.One
	}

	return m, nil
}

// NewFromSlice creates a height×width matrix filled from values in row-major
// order. values is copied.
//
// Faults:
//   - ErrDimensionMismatch when len(values) != height*width.
//   - ErrNaNInf when the finite-only policy is on and values holds NaN/±Inf.
func NewFromSlice(height, width int, values []scalar.T, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	m, err := newDense(ctxFromSlice, height, width, o)
	if err != nil {
		return nil, err
	}
	if len(values) != len(m.data) {
		m.Release()
		raise(o.reporter, denseErrorf(ctxFromSlice, height, width, ErrDimensionMismatch))
	}
	if o.validateFinite {
		for k, v := range values {
			if !v.IsFinite() {
				m.Release()
				raise(o.reporter, denseErrorf(ctxFromSlice, k/width+1, k%width+1, ErrNaNInf))
			}
		}
	}
	copy(m.data, values)

	return m, nil
}

// Release drops the grid. Safe on a nil receiver and on repeated calls;
// any access after Release is a logic fault (ErrReleased).
func (m *Dense) Release() {
	if m == nil {
		return
	}
	m.data = nil
	m.h, m.w = 0, 0
}

// Height returns the number of rows.
func (m *Dense) Height() int {
	m.mustLive(ctxGet)
	return m.h
}

// Width returns the number of columns.
func (m *Dense) Width() int {
	m.mustLive(ctxGet)
	return m.w
}

// offset computes the flat index of the 1-based (row, col). No bounds check.
func (m *Dense) offset(row, col int) int {
	return (row-1)*m.w + (col - 1)
}

// indexOf bounds-checks (row, col) and computes the flat offset, raising a
// logic fault tagged with method on violation.
func (m *Dense) indexOf(method string, row, col int) int {
	m.mustLive(method)
	if row < 1 || row > m.h || col < 1 || col > m.w {
		m.fault(denseErrorf(method, row, col, ErrOutOfRange))
	}

	return m.offset(row, col)
}

// Get returns the entry at 1-based (row, col).
//
// Faults:
//   - ErrOutOfRange unless 1 ≤ row ≤ Height() and 1 ≤ col ≤ Width().
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Get(row, col int) scalar.T {
	return m.data[m.indexOf(ctxGet, row, col)]
}

// Set stores v at 1-based (row, col).
//
// Faults:
//   - ErrOutOfRange for bad indices; ErrNaNInf for non-finite v under the
//     finite-only policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v scalar.T) {
	off := m.indexOf(ctxSet, row, col)
	if m.opts.validateFinite && !v.IsFinite() {
		m.fault(denseErrorf(ctxSet, row, col, ErrNaNInf))
	}
	m.data[off] = v
}

// Clone returns a deep copy sharing the receiver's options.
//
// Errors:
//   - ErrAllocation (system fault, reported) when the copy cannot be allocated.
func (m *Dense) Clone() (*Dense, error) {
	m.mustLive(ctxClone)
	c, err := newDense(ctxClone, m.h, m.w, m.opts)
	if err != nil {
		return nil, err
	}
	copy(c.data, m.data)

	return c, nil
}

// Do visits each entry in row-major order and calls f(row, col, v) with
// 1-based coordinates; it stops early when f returns false.
func (m *Dense) Do(f func(row, col int, v scalar.T) bool) {
	m.mustLive("Do")
	var i, j, base int
	for i = 0; i < m.h; i++ {
		base = i * m.w
		for j = 0; j < m.w; j++ {
			if !f(i+1, j+1, m.data[base+j]) {
				return
			}
		}
	}
}

// String provides a readable row-wise dump for diagnostics.
// A released or nil matrix renders as the empty string.
func (m *Dense) String() string {
	if m == nil || m.data == nil {
		return ""
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.h; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.w
		for j = 0; j < m.w; j++ {
			b.WriteString(m.data[base+j].String())
			if j+1 < m.w {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// ---------- fault plumbing ----------

// mustLive raises ErrNilMatrix / ErrReleased for unusable receivers.
func (m *Dense) mustLive(method string) {
	if m == nil {
		raise(report.Default(), fmt.Errorf("Dense.%s: %w", method, ErrNilMatrix))
	}
	if m.data == nil {
		raise(m.opts.reporter, fmt.Errorf("Dense.%s: %w", method, ErrReleased))
	}
}

// fault raises err as a logic fault through the matrix's reporter.
func (m *Dense) fault(err error) {
	raise(m.opts.reporter, err)
}

// raise hands err to r.LogicError. Execution must not continue past a logic
// fault, so if r returns anyway raise panics on its behalf.
func raise(r report.Reporter, err error) {
	if r == nil {
		r = report.Default()
	}
	r.LogicError(err)
	panic(&report.Fault{Class: report.LogicFault, Err: err})
}
