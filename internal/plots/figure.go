// Package plots renders the relational, categorical and statistical figures of
// a dataset as PNG files, plus an optional interactive HTML page.
package plots

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"

	"gotrends/internal"
	"gotrends/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Output file names, written inside Plotter.Dir and overwritten on every run.
const (
	RelationalFile  = "relational_plot.png"
	CategoricalFile = "categorical_plot.png"
	HistogramFile   = "statistical_plot_histogram.png"
	HeatmapFile     = "statistical_plot_heatmap.png"
)

// GuardMessage is printed when a figure needs two numeric columns and the frame has fewer.
const GuardMessage = "No enough numerical columns for relational plot"

const (
	figureWidth  = 8 * vg.Inch
	figureHeight = 5 * vg.Inch
)

var (
	seaGreen = color.RGBA{R: 46, G: 139, B: 87, A: 255}
	skyBlue  = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	darkBlue = color.RGBA{R: 31, G: 78, B: 121, A: 255}

	// set2 mirrors the ColorBrewer Set2 qualitative palette.
	set2 = []color.Color{
		color.RGBA{R: 102, G: 194, B: 165, A: 255},
		color.RGBA{R: 252, G: 141, B: 98, A: 255},
		color.RGBA{R: 141, G: 160, B: 203, A: 255},
		color.RGBA{R: 231, G: 138, B: 195, A: 255},
		color.RGBA{R: 166, G: 216, B: 84, A: 255},
		color.RGBA{R: 255, G: 217, B: 47, A: 255},
		color.RGBA{R: 229, G: 196, B: 148, A: 255},
		color.RGBA{R: 179, G: 179, B: 179, A: 255},
	}
)

// Plotter writes the figures of a frame.
type Plotter struct {
	Out    io.Writer // console messages
	Dir    string    // must already exist
	Bins   int
	logger *internal.Logger
}

// NewPlotter creates a plotter writing into dir with the given histogram bin count
func NewPlotter(out io.Writer, dir string, bins int, logger *internal.Logger) *Plotter {
	if dir == "" {
		dir = "."
	}
	if bins <= 0 {
		bins = 20
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Plotter{Out: out, Dir: dir, Bins: bins, logger: logger}
}

// Path returns where the named figure is written
func (p *Plotter) Path(name string) string {
	return filepath.Join(p.Dir, name)
}

func newFigure(title, xLabel, yLabel string) *plot.Plot {
	fig := plot.New()
	fig.Title.Text = title
	fig.X.Label.Text = xLabel
	fig.Y.Label.Text = yLabel
	return fig
}

// saveFigure renders fig into memory and writes it to name. The file handle is
// released on every path; a failed close is reported like a failed write.
func (p *Plotter) saveFigure(fig *plot.Plot, name string) (err error) {
	path := p.Path(name)

	wt, err := fig.WriterTo(figureWidth, figureHeight, "png")
	if err != nil {
		return errors.RenderError(name, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.RenderError(name, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.RenderError(name, cerr)
		}
	}()

	if _, err = wt.WriteTo(file); err != nil {
		return errors.RenderError(name, err)
	}

	p.logger.Debug("[Plotter] wrote %s", path)
	return nil
}

func dropNaN(values []float64) []float64 {
	kept := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			kept = append(kept, v)
		}
	}
	return kept
}

func (p *Plotter) confirm(format string, args ...interface{}) {
	fmt.Fprintf(p.Out, format+"\n", args...)
}
