// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape/nil checks and the
//    structural predicates (diagonal, triangular, equality).
//  - Validators return plain wrapped sentinels; the engine turns them into
//    logic faults at its public surface so call sites stay uniform.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmat/scalar"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is a live matrix (non-nil, not released).
//
// Returns ErrNilMatrix or ErrReleased.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if m.data == nil {
		return validatorErrorf("ValidateNotNil", ErrReleased)
	}

	return nil
}

// ValidateSquare checks that m is live and Height == Width.
//
// Errors: ErrNilMatrix, ErrReleased, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.h != m.w {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameShape ensures a and b are live and have equal dimensions.
//
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.h != b.h {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.w != b.w {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// IsDiagonal reports whether every off-diagonal entry is Eq-zero.
// Defined for any shape; a nil or released receiver is a logic fault.
// Complexity: O(h*w).
func (m *Dense) IsDiagonal() bool {
	ok := true
	m.Do(func(row, col int, v scalar.T) bool {
		if row != col && !v.IsZero() {
			ok = false
		}
		return ok
	})

	return ok
}

// IsTriangular reports whether every entry above the main diagonal is
// Eq-zero, the shape Triangularize produces.
// Complexity: O(h*w).
func (m *Dense) IsTriangular() bool {
	ok := true
	m.Do(func(row, col int, v scalar.T) bool {
		if col > row && !v.IsZero() {
			ok = false
		}
		return ok
	})

	return ok
}

// Equal reports whether a and b have identical dimensions and Eq entries.
// A nil or released operand is a logic fault.
// Complexity: O(h*w).
func Equal(a, b *Dense) bool {
	if err := ValidateNotNil(a); err != nil {
		raise(nil, validatorErrorf("Equal", err))
	}
	if err := ValidateNotNil(b); err != nil {
		raise(a.opts.reporter, validatorErrorf("Equal", err))
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	for k := range a.data {
		if !scalar.Eq(a.data[k], b.data[k]) {
			return false
		}
	}

	return true
}
