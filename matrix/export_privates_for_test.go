// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for internal options.
//
// Purpose:
//   - Let matrix_test provoke allocation failures on an already-built matrix
//     without widening the production API.
//   - Expose a read-only snapshot of the effective options.

// SetMaxCellsForTest changes the allocation cap carried by m, so the next
// allocation made with m's options (Clone, Determinant, Diagonalized) sees it.
func SetMaxCellsForTest(m *Dense, n int) { m.opts.maxCells = n }

// OptionsSnapshot is a stable, read-only view of Options for tests.
type OptionsSnapshot struct {
	MaxCells       int
	ValidateFinite bool
	HasReporter    bool
}

// GatherOptionsSnapshot resolves opts over the defaults and snapshots them.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		MaxCells:       o.maxCells,
		ValidateFinite: o.validateFinite,
		HasReporter:    o.reporter != nil,
	}
}
