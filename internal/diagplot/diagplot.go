// Package diagplot renders the report's diagnostic figures. It is the
// plotting collaborator of the report builder: given already-computed
// values and an output path, it writes an image file as a side effect.
package diagplot

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoData indicates there are no values to plot.
var ErrNoData = errors.New("diagplot: no values to plot")

// histogramBins is the fixed bin count for the library-size histogram.
const histogramBins = 25

// Figure dimensions.
const (
	figureWidth  = 6 * vg.Inch
	figureHeight = 4 * vg.Inch
)

// CellSizeHistogram renders a histogram of per-cell library sizes to the
// given path. The image format follows the path's extension (.png, .svg,
// .pdf); the caller owns directory creation.
func CellSizeHistogram(sizes []float64, path string) error {
	if len(sizes) == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Library Size Distribution"
	p.X.Label.Text = "molecules per cell"
	p.Y.Label.Text = "cells"

	h, err := plotter.NewHist(plotter.Values(sizes), histogramBins)
	if err != nil {
		return fmt.Errorf("building histogram: %w", err)
	}
	p.Add(h)

	if err := p.Save(figureWidth, figureHeight, path); err != nil {
		return fmt.Errorf("saving histogram to %s: %w", path, err)
	}
	return nil
}
