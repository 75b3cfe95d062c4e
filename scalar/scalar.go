// SPDX-License-Identifier: MIT

// Package scalar defines the element type stored in lvmat matrices together
// with its arithmetic and its approximate-equality policy.
//
// Purpose:
//   - Give the matrix engine a single numeric type with named identities.
//   - Centralize the tolerance used to classify near-zero pivots, so repeated
//     elimination steps that accumulate rounding error are not misread as
//     non-zero (or the other way round).
//
// Notes:
//   - Eq is symmetric and reflexive but not transitive near the tolerance
//     boundary; no caller may rely on transitivity.
package scalar

import (
	"errors"
	"math"
	"strconv"
)

// Epsilon is the fixed tolerance of Eq: |a-b| < Epsilon.
const Epsilon = 1e-10

// T is a matrix element.
type T float64

// Identities.
const (
	Zero T = 0
	One  T = 1
)

// ErrDivisionByZero is the panic value of Div when the divisor is Eq to Zero.
var ErrDivisionByZero = errors.New("scalar: division by zero")

// FromInt maps an integer into the scalar domain as n × One.
func FromInt(n int) T {
	return T(n) * One
}

// Plus returns t + u.
func (t T) Plus(u T) T { return t + u }

// Minus returns t - u.
func (t T) Minus(u T) T { return t - u }

// Times returns t × u.
func (t T) Times(u T) T { return t * u }

// Neg returns -t.
func (t T) Neg() T { return -t }

// Div returns t / u. It panics with ErrDivisionByZero if u is Eq to Zero;
// callers guard with IsZero first.
func (t T) Div(u T) T {
	if u.IsZero() {
		panic(ErrDivisionByZero)
	}

	return t / u
}

// Eq reports whether t and u are equal within Epsilon.
func (t T) Eq(u T) bool { return Eq(t, u) }

// IsZero reports whether t is Eq to Zero.
func (t T) IsZero() bool { return Eq(t, Zero) }

// IsFinite reports whether t is neither NaN nor ±Inf.
func (t T) IsFinite() bool {
	f := float64(t)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Float64 returns t as a plain float64.
func (t T) Float64() float64 { return float64(t) }

// String formats t with the shortest representation (%g).
func (t T) String() string {
	return strconv.FormatFloat(float64(t), 'g', -1, 64)
}

// Eq reports whether |a-b| < Epsilon.
func Eq(a, b T) bool {
	return math.Abs(float64(a-b)) < Epsilon
}
