// SPDX-License-Identifier: MIT

package report

import (
	"go.uber.org/zap"
)

// Logger is a Reporter that writes every fault to a zap logger and, when
// configured, counts it in Metrics.
type Logger struct {
	log     *zap.Logger
	metrics *Metrics
}

var _ Reporter = (*Logger)(nil)

// Option configures a Logger.
type Option func(*Logger)

// WithMetrics counts reported faults by class.
func WithMetrics(m *Metrics) Option {
	return func(l *Logger) { l.metrics = m }
}

// New returns a Logger writing to log. A nil log is replaced by zap.NewNop().
func New(log *zap.Logger, opts ...Option) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	l := &Logger{log: log.Named("lvmat")}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Default returns a Logger over the process-wide zap logger (zap.L()), which
// is a no-op until the host calls zap.ReplaceGlobals.
func Default() *Logger {
	return New(zap.L())
}

// SystemError logs err at error level. Execution continues; the caller is
// expected to also receive err as a return value.
func (l *Logger) SystemError(err error) {
	l.count(SystemFault)
	l.log.Error("system error", zap.Stringer("class", SystemFault), zap.Error(err))
}

// LogicError logs err and panics with a *Fault. It never returns.
func (l *Logger) LogicError(err error) {
	l.count(LogicFault)
	l.log.Error("logic error", zap.Stringer("class", LogicFault), zap.Error(err))
	panic(&Fault{Class: LogicFault, Err: err})
}

// Error logs a user fault.
func (l *Logger) Error(err error) {
	l.count(UserFault)
	l.log.Error("error", zap.Stringer("class", UserFault), zap.Error(err))
}

// Warning logs msg at warn level.
func (l *Logger) Warning(msg string) {
	l.count(WarningClass)
	l.log.Warn(msg, zap.Stringer("class", WarningClass))
}

func (l *Logger) count(c Class) {
	if l.metrics != nil {
		l.metrics.Observe(c)
	}
}
