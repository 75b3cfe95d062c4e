// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Detection sites wrap them with method context via %w; callers and
// tests match them with errors.Is.

package matrix

import "errors"

// NOTE ON FAULT CLASSES
// ---------------------
// ErrAllocation is the only system fault: it is reported through
// Reporter.SystemError and returned to the caller as an error value.
// Every other sentinel marks a violated caller contract (logic fault): it is
// reported through Reporter.LogicError and unwinds as a *report.Fault panic,
// so no public method returns it as a plain error.

var (
	// ErrAllocation is returned when the grid for the requested shape cannot be
	// allocated (cell count overflows int or exceeds the configured MaxCells).
	ErrAllocation = errors.New("matrix: cannot allocate grid")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a 1-based row or column index is outside
	// [1..Height] or [1..Width].
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between a shape
	// and the data supplied for it.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-only numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrReleased indicates access to a matrix after Release.
	ErrReleased = errors.New("matrix: use after release")
)
