// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/katalvlaran/lvmat/render"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) detCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "det FILE",
		Short: "Print the determinant of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guard(func() error {
				m, err := a.readMatrix(args[0], cmd.InOrStdin())
				if err != nil {
					return err
				}
				defer m.Release()

				d, err := m.Determinant()
				if err != nil {
					return errors.WithMessage(err, "determinant")
				}
				a.log.Debug("determinant", zap.Int("order", m.Height()), zap.Stringer("value", d))
				fmt.Fprintln(cmd.OutOrStdout(), d)

				return nil
			})
		},
	}
}

// reduceCmd builds tri and diag, which differ only in the kernel applied.
func (a *app) reduceCmd(use, short string, kernel func(*matrix.Dense)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " FILE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guard(func() error {
				m, err := a.readMatrix(args[0], cmd.InOrStdin())
				if err != nil {
					return err
				}
				defer m.Release()

				kernel(m)
				return a.grid().Render(cmd.OutOrStdout(), m)
			})
		},
	}
}

func (a *app) triCmd() *cobra.Command {
	return a.reduceCmd("tri", "Print the triangular form produced by elimination", (*matrix.Dense).Triangularize)
}

func (a *app) diagCmd() *cobra.Command {
	return a.reduceCmd("diag", "Print the diagonal form produced by elimination", (*matrix.Dense).Diagonalize)
}

func (a *app) identityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identity N",
		Short: "Print the N×N identity matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return a.userFault(errors.WithMessagef(ErrBadOrder, "%q", args[0]))
			}

			return a.guard(func() error {
				m, err := matrix.NewIdentity(n, a.matrixOptions()...)
				if err != nil {
					return errors.WithMessage(err, "identity")
				}
				defer m.Release()

				return a.grid().Render(cmd.OutOrStdout(), m)
			})
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	var heatmap string
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a matrix, optionally writing a heat-map image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.guard(func() error {
				m, err := a.readMatrix(args[0], cmd.InOrStdin())
				if err != nil {
					return err
				}
				defer m.Release()

				if err = a.grid().Render(cmd.OutOrStdout(), m); err != nil {
					return err
				}
				if heatmap == "" {
					return nil
				}

				return writeHeatMap(heatmap, m, filepath.Base(args[0]))
			})
		},
	}
	cmd.Flags().StringVar(&heatmap, "heatmap", "", "write a heat map to this file (.png, .svg, .pdf)")

	return cmd
}

// writeHeatMap picks the image format from the file extension, PNG when
// there is none.
func writeHeatMap(path string, m render.Source, title string) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		format = "png"
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "heat map")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "heat map")
		}
	}()

	return errors.WithMessagef(render.WriteHeatMap(f, m, title, format, 0), "heat map %s", path)
}
