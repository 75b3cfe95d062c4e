// Package matrix is the lvmat dense-matrix engine.
//
// The matrix package provides:
//
//   - Dense, a row-major grid of scalar.T with 1-based Get/Set.
//   - Constructors New, NewIdentity, NewFromSlice and FromGonum that return a
//     fully built matrix or no matrix at all.
//   - Elimination kernels: Triangularize, Diagonalize, Determinant, with
//     row pivoting and Epsilon-based zero detection.
//
// Faults are split in two classes. Allocation failure (ErrAllocation) is a
// system fault: it is reported and returned as an error. Everything else
// (bad indices, non-square input to square-only kernels, NaN/Inf under the
// finite-only policy) is a logic fault: it is reported through the
// configured report.Reporter and unwinds as a *report.Fault panic, which a
// host may stop with report.Recover.
//
// Matrices are not safe for concurrent mutation.
package matrix
