// Package lvmat is a small dense-matrix toolkit built around Gaussian
// elimination with row pivoting.
//
// ✨ What is in the box?
//
//	• scalar/   the numeric element type with Epsilon-based equality
//	• matrix/   Dense, 1-based Get/Set, Triangularize, Diagonalize, Determinant
//	• report/   fault classes, the Reporter contract, a zap-backed Reporter
//	            and prometheus fault counters
//	• render/   bordered console grids and gonum/plot heat maps
//	• cmd/lvmat command line front end
//
// Faults come in three kinds. System faults (allocation) are returned as
// errors, logic faults (bad index, non-square input) unwind as a
// *report.Fault panic that a host stops with report.Recover, and user faults
// belong to the command line.
//
// Quick example:
//
//	m, _ := matrix.NewFromSlice(2, 2, []scalar.T{2, 1, 1, 1})
//	det, _ := m.Determinant() // 1
//
// The subpackages carry the details.
package lvmat
