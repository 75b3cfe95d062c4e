// SPDX-License-Identifier: MIT

// Package render draws lvmat matrices for people: a bordered console grid with
// fixed-width cells and a heat-map image.
//
// Purpose:
//   - Keep every formatting concern (widths, colour, precision) out of the
//     matrix engine; renderers see a matrix only through Source.
//
// Notes:
//   - Cell widths are measured in terminal columns (go-runewidth), so the
//     ellipsis used for truncation does not break the borders.
package render

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvmat/scalar"
	runewidth "github.com/mattn/go-runewidth"
)

// Source is the read-only view a renderer needs. *matrix.Dense satisfies it.
type Source interface {
	Height() int
	Width() int
	Get(row, col int) scalar.T
}

// Defaults for a zero Grid.
const (
	DefaultCellWidth = 10
	DefaultPrecision = 3
)

// ANSI sequences used when Grid.Color is on.
const (
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
)

const ellipsis = "…"

// ErrEmpty is returned for a source with no rows or columns.
var ErrEmpty = errors.New("render: empty matrix")

// Grid renders a matrix as
//
//	+------------+------------+
//	|      2.000 |      1.000 |
//	+------------+------------+
//	|      1.000 |      1.000 |
//	+------------+------------+
//
// The zero value uses DefaultCellWidth and DefaultPrecision without colour.
type Grid struct {
	CellWidth int  // content columns per cell
	Precision int  // digits after the decimal point
	Color     bool // highlight diagonal cells
}

func (g Grid) cellWidth() int {
	if g.CellWidth <= 0 {
		return DefaultCellWidth
	}
	return g.CellWidth
}

func (g Grid) precision() int {
	if g.Precision < 0 {
		return DefaultPrecision
	}
	if g.Precision == 0 && g.CellWidth == 0 {
		return DefaultPrecision
	}
	return g.Precision
}

// Cell formats v into exactly CellWidth terminal columns, right aligned.
// Values too wide for fixed notation fall back to %g, then get truncated.
func (g Grid) Cell(v scalar.T) string {
	w := g.cellWidth()
	s := strconv.FormatFloat(v.Float64(), 'f', g.precision(), 64)
	if runewidth.StringWidth(s) > w {
		s = strconv.FormatFloat(v.Float64(), 'g', g.precision()+1, 64)
	}
	if runewidth.StringWidth(s) > w {
		s = runewidth.Truncate(s, w, ellipsis)
	}

	return runewidth.FillLeft(s, w)
}

// Render writes the bordered grid of m to w.
func (g Grid) Render(w io.Writer, m Source) error {
	h, wd := m.Height(), m.Width()
	if h <= 0 || wd <= 0 {
		return ErrEmpty
	}
	cw := g.cellWidth()
	sep := "+" + strings.Repeat(strings.Repeat("-", cw+2)+"+", wd) + "\n"

	bw := bufio.NewWriter(w)
	bw.WriteString(sep)
	for i := 1; i <= h; i++ {
		bw.WriteString("|")
		for j := 1; j <= wd; j++ {
			bw.WriteString(" ")
			cell := g.Cell(m.Get(i, j))
			if g.Color && i == j {
				cell = ansiGreen + cell + ansiReset
			}
			bw.WriteString(cell)
			bw.WriteString(" |")
		}
		bw.WriteString("\n")
		bw.WriteString(sep)
	}

	return bw.Flush()
}

// Sprint returns the rendered grid as a string.
func (g Grid) Sprint(m Source) (string, error) {
	var b strings.Builder
	if err := g.Render(&b, m); err != nil {
		return "", err
	}
	return b.String(), nil
}
