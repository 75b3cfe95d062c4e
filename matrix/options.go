// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the Dense engine. This file
// defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies defaults first.
//
// Design goals:
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options travel with the matrix: Clone and the elimination routines reuse
//     the receiver's options, so a transient clone reports to the same place.
package matrix

import "github.com/katalvlaran/lvmat/report"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxCells caps height*width of a single grid. Requests above the cap
	// are refused as allocation failures instead of exhausting the process.
	DefaultMaxCells = 1 << 26

	// DefaultValidateFinite toggles rejection of NaN/±Inf in Set and ingestion.
	DefaultValidateFinite = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxCellsInvalid = "matrix: WithMaxCells: n must be > 0"
	panicReporterNil     = "matrix: WithReporter: reporter must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	reporter       report.Reporter // fault sink; report.Default()
	maxCells       int             // > 0; DefaultMaxCells
	validateFinite bool            // DefaultValidateFinite
}

// WithReporter routes faults detected by the engine to r.
// Panics when r is nil.
func WithReporter(r report.Reporter) Option {
	if r == nil {
		panic(panicReporterNil)
	}

	return func(o *Options) { o.reporter = r }
}

// WithMaxCells sets the largest grid (height*width) the engine will allocate.
// Panics when n <= 0.
func WithMaxCells(n int) Option {
	if n <= 0 {
		panic(panicMaxCellsInvalid)
	}

	return func(o *Options) { o.maxCells = n }
}

// WithValidateFinite enables or disables the finite-only numeric policy.
func WithValidateFinite(on bool) Option {
	return func(o *Options) { o.validateFinite = on }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		reporter:       report.Default(),
		maxCells:       DefaultMaxCells,
		validateFinite: DefaultValidateFinite,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
