// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

// DefaultHeatMapSize is the side length used by WriteHeatMap when size <= 0.
const DefaultHeatMapSize = 12 * vg.Centimeter

const heatLevels = 16

// heatGrid adapts a Source to plotter.GridXYZ. Column c and row r are
// 0-based on the plot side.
type heatGrid struct{ m Source }

func (g heatGrid) Dims() (c, r int)   { return g.m.Width(), g.m.Height() }
func (g heatGrid) Z(c, r int) float64 { return g.m.Get(r+1, c+1).Float64() }
func (g heatGrid) X(c int) float64    { return float64(c + 1) }
func (g heatGrid) Y(r int) float64    { return float64(r + 1) }

// HeatMap builds a heat-map plot of m. Row 1 is drawn at the bottom.
func HeatMap(m Source, title string) (*plot.Plot, error) {
	if m.Height() <= 0 || m.Width() <= 0 {
		return nil, ErrEmpty
	}

	hm := plotter.NewHeatMap(heatGrid{m}, palette.Heat(heatLevels, 1))
	if hm.Min == hm.Max {
		// flat input: widen the range so the palette index stays finite
		hm.Min -= 0.5
		hm.Max += 0.5
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.Add(hm)

	return p, nil
}

// WriteHeatMap renders m as a square image in the given format ("png",
// "svg", "pdf", ...) and writes it to w.
func WriteHeatMap(w io.Writer, m Source, title, format string, size vg.Length) error {
	p, err := HeatMap(m, title)
	if err != nil {
		return err
	}
	if size <= 0 {
		size = DefaultHeatMapSize
	}
	wt, err := p.WriterTo(size, size, strings.ToLower(format))
	if err != nil {
		return fmt.Errorf("render: heat map: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: heat map: %w", err)
	}

	return nil
}
