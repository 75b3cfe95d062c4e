// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"math"
	"os"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/scalar"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// stdinName selects standard input instead of a file.
const stdinName = "-"

// Input errors. All of them are user faults.
var (
	ErrEmptyInput = errors.New("input: no rows")
	ErrRaggedRows = errors.New("input: rows differ in length")
	ErrNonFinite  = errors.New("input: NaN or Inf value")
	ErrBadOrder   = errors.New("input: order must be a positive integer")
)

// matrixFile is the on-disk format:
//
//	rows:
//	  - [2, 1]
//	  - [1, 1]
type matrixFile struct {
	Rows [][]float64 `yaml:"rows"`
}

// decodeRows parses r and checks the grid is non-empty, rectangular and
// finite. It returns the row-major values and the shape.
func decodeRows(r io.Reader) (vals []scalar.T, height, width int, err error) {
	var f matrixFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err = dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, 0, 0, ErrEmptyInput
		}
		return nil, 0, 0, errors.Wrap(err, "input: yaml")
	}

	height = len(f.Rows)
	if height == 0 || len(f.Rows[0]) == 0 {
		return nil, 0, 0, ErrEmptyInput
	}
	width = len(f.Rows[0])

	vals = make([]scalar.T, 0, height*width)
	for i, row := range f.Rows {
		if len(row) != width {
			return nil, 0, 0, errors.Wrapf(ErrRaggedRows, "row %d has %d values, row 1 has %d", i+1, len(row), width)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, 0, 0, errors.Wrapf(ErrNonFinite, "row %d column %d", i+1, j+1)
			}
			vals = append(vals, scalar.T(v))
		}
	}

	return vals, height, width, nil
}

// readMatrix loads the named file ("-" for stdin) into a Dense. Parse and
// shape errors are reported as user faults.
func (a *app) readMatrix(name string, stdin io.Reader) (*matrix.Dense, error) {
	r := stdin
	if name != stdinName {
		f, err := os.Open(name)
		if err != nil {
			return nil, a.userFault(errors.Wrap(err, "input"))
		}
		defer f.Close()
		r = f
	}

	vals, h, w, err := decodeRows(r)
	if err != nil {
		return nil, a.userFault(errors.WithMessagef(err, "%s", name))
	}
	m, err := matrix.NewFromSlice(h, w, vals, a.matrixOptions()...)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s", name)
	}
	a.log.Debug("matrix loaded", zap.String("source", name), zap.Int("height", h), zap.Int("width", w))

	return m, nil
}
