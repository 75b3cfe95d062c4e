// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvmat/scalar"
	"gonum.org/v1/gonum/mat"
)

const ctxFromGonum = "FromGonum"

// ToGonum copies m into a new gonum *mat.Dense (0-based indexing there).
func (m *Dense) ToGonum() *mat.Dense {
	m.mustLive("ToGonum")
	buf := make([]float64, len(m.data))
	for k, v := range m.data {
		buf[k] = v.Float64()
	}

	return mat.NewDense(m.h, m.w, buf)
}

// FromGonum copies any gonum matrix into a new Dense.
//
// Errors:
//   - ErrAllocation (system fault) when the grid cannot be allocated.
//
// Faults:
//   - ErrInvalidDimensions for an empty src; ErrNaNInf for non-finite entries
//     under the finite-only policy.
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if src == nil {
		raise(o.reporter, matrixErrorf(ctxFromGonum, ErrNilMatrix))
	}
	r, c := src.Dims()
	m, err := newDense(ctxFromGonum, r, c, o)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v scalar.T
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = scalar.T(src.At(i, j))
			if o.validateFinite && !v.IsFinite() {
				m.Release()
				raise(o.reporter, denseErrorf(ctxFromGonum, i+1, j+1, ErrNaNInf))
			}
			m.data[m.offset(i+1, j+1)] = v
		}
	}

	return m, nil
}
