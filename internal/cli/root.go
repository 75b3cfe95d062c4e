// SPDX-License-Identifier: MIT

// Package cli implements the lvmat command line: loading matrix files,
// running the elimination kernels and rendering results.
package cli

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvmat/internal/config"
	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/render"
	"github.com/katalvlaran/lvmat/report"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Exit statuses returned by Run.
const (
	ExitOK     = 0
	ExitUser   = 1
	ExitLogic  = 2
	ExitSystem = 3
)

// app is the state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string

	cfg     *config.Config
	log     *zap.Logger
	rep     *report.Logger
	metrics *report.Metrics
	undo    func()
}

// Run executes the command line args and returns the process exit status.
func Run(args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{v: config.NewViper()}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.Execute()
	a.close()
	if err != nil {
		fmt.Fprintf(errOut, "lvmat: %v\n", err)
	}

	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case report.IsLogicFault(err):
		return ExitLogic
	case errors.Is(err, matrix.ErrAllocation):
		return ExitSystem
	default:
		return ExitUser
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lvmat",
		Short:         "Dense matrix elimination: determinant, triangular and diagonal forms.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "YAML config file")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", config.FormatConsole, "log encoding (console or json)")
	flags.Int("precision", render.DefaultPrecision, "digits after the decimal point")
	flags.Int("cell-width", render.DefaultCellWidth, "cell width in terminal columns")
	flags.Bool("color", false, "highlight the diagonal with ANSI colour")
	flags.Int("max-cells", matrix.DefaultMaxCells, "largest matrix the engine may allocate")

	if err := bindFlags(a.v, flags); err != nil {
		panic(err)
	}

	root.AddCommand(
		a.detCmd(),
		a.triCmd(),
		a.diagCmd(),
		a.identityCmd(),
		a.showCmd(),
	)

	return root
}

// flagKeys maps configuration keys to the persistent flags overriding them.
var flagKeys = map[string]string{
	config.KeyLogLevel:        "log-level",
	config.KeyLogFormat:       "log-format",
	config.KeyRenderPrecision: "precision",
	config.KeyRenderCellWidth: "cell-width",
	config.KeyRenderColor:     "color",
	config.KeyMatrixMaxCells:  "max-cells",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return errors.Wrapf(err, "binding --%s", name)
		}
	}
	return nil
}

// setup loads configuration and installs the logger and reporter.
func (a *app) setup(logOut io.Writer) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return errors.WithMessage(err, "configuration")
	}
	log, err := newLogger(cfg.Log, logOut)
	if err != nil {
		return errors.WithMessage(err, "logger")
	}
	metrics, err := report.NewMetrics(prometheus.NewRegistry())
	if err != nil {
		return errors.WithMessage(err, "metrics")
	}

	a.cfg = cfg
	a.log = log
	a.metrics = metrics
	a.rep = report.New(log, report.WithMetrics(metrics))
	a.undo = zap.ReplaceGlobals(log)

	return nil
}

func (a *app) close() {
	if a.log == nil {
		return
	}
	a.log.Debug("fault summary",
		zap.Float64("system", a.metrics.Count(report.SystemFault)),
		zap.Float64("logic", a.metrics.Count(report.LogicFault)),
		zap.Float64("user", a.metrics.Count(report.UserFault)),
		zap.Float64("warning", a.metrics.Count(report.WarningClass)),
	)
	_ = a.log.Sync()
	if a.undo != nil {
		a.undo()
	}
}

// matrixOptions threads configuration and the reporter into the engine.
func (a *app) matrixOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithReporter(a.rep),
		matrix.WithMaxCells(a.cfg.Matrix.MaxCells),
	}
}

func (a *app) grid() render.Grid {
	return render.Grid{
		CellWidth: a.cfg.Render.CellWidth,
		Precision: a.cfg.Render.Precision,
		Color:     a.cfg.Render.Color,
	}
}

// guard runs fn and turns a logic-fault panic into an error.
func (a *app) guard(fn func() error) (err error) {
	defer report.Recover(&err)
	return fn()
}

// userFault reports err as bad input and returns it.
func (a *app) userFault(err error) error {
	a.rep.Error(err)
	return err
}
