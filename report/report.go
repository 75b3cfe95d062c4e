// SPDX-License-Identifier: MIT

// Package report is the fault-reporting collaborator of the matrix engine.
//
// Purpose:
//   - Classify faults into system, logic and user faults plus warnings.
//   - Keep process-exit decisions out of library code: a logic fault unwinds
//     as a panic carrying a *Fault, and the host decides where to stop it
//     (see Recover).
//
// Classes:
//   - SystemFault: resource exhaustion (allocation). Recoverable; the caller
//     also receives an error value.
//   - LogicFault: violated caller contract (bad index, wrong shape).
//     Unrecoverable; LogicError never returns normally.
//   - UserFault: bad input at the CLI boundary.
//   - WarningClass: informational, execution continues.
package report

import (
	"errors"
	"fmt"
)

// Class is the severity class of a reported condition.
type Class int

// Severity classes.
const (
	SystemFault Class = iota
	LogicFault
	UserFault
	WarningClass
)

var classNames = [...]string{
	SystemFault:  "system",
	LogicFault:   "logic",
	UserFault:    "user",
	WarningClass: "warning",
}

// String returns the lower-case class label (also used as metric label).
func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("class(%d)", int(c))
	}

	return classNames[c]
}

// Fault carries a classified error. It is the panic value of LogicError.
type Fault struct {
	Class Class
	Err   error
}

// Error implements error.
func (f *Fault) Error() string {
	return fmt.Sprintf("%s fault: %v", f.Class, f.Err)
}

// Unwrap exposes the underlying sentinel to errors.Is / errors.As.
func (f *Fault) Unwrap() error { return f.Err }

// Reporter receives the faults detected by the engine.
//
// LogicError must not return normally; implementations either panic with a
// *Fault or terminate the process.
type Reporter interface {
	SystemError(err error)
	LogicError(err error)
	Error(err error)
	Warning(msg string)
}

// Recover converts a logic-fault panic into an error stored in *errp.
// Install it with defer at the boundary that owns the process decision:
//
//	func run() (err error) {
//		defer report.Recover(&err)
//		...
//	}
//
// Panics that do not carry a *Fault are re-raised untouched.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if f, ok := r.(*Fault); ok {
		*errp = f
		return
	}
	panic(r)
}

// IsLogicFault reports whether err is (or wraps) a logic *Fault.
func IsLogicFault(err error) bool {
	var f *Fault
	return errors.As(err, &f) && f.Class == LogicFault
}
