package plots

import (
	"fmt"
	"image/color"
	"math"

	"gotrends/internal/analysis"
	"gotrends/internal/dataset"
	"gotrends/internal/errors"

	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const densityPoints = 200

// Statistical draws a histogram with a density overlay of the first numeric
// column and an annotated correlation heatmap of all numeric columns. It shares
// the two-column guard and message of Relational.
func (p *Plotter) Statistical(frame *dataset.Frame) error {
	numeric := frame.NumericColumns()
	if len(numeric) < 2 {
		fmt.Fprintln(p.Out, GuardMessage)
		return nil
	}

	if err := p.histogram(frame, numeric[0]); err != nil {
		return err
	}
	p.confirm("Histogram saved as '%s'.", HistogramFile)

	corr, err := analysis.Correlation(frame)
	if err != nil {
		return err
	}
	if err := p.heatmap(corr); err != nil {
		return err
	}
	p.confirm("Correlation heatmap saved as '%s'.", HeatmapFile)
	return nil
}

func (p *Plotter) histogram(frame *dataset.Frame, col string) error {
	values, err := frame.Values(col)
	if err != nil {
		return err
	}
	values = dropNaN(values)
	if len(values) == 0 {
		return errors.InvalidInput(fmt.Sprintf("column %q has no values to plot", col))
	}

	hist, err := plotter.NewHist(plotter.Values(values), p.Bins)
	if err != nil {
		return errors.RenderError(HistogramFile, err)
	}
	hist.FillColor = skyBlue
	hist.LineStyle.Color = color.White

	fig := newFigure(fmt.Sprintf("Distribution of %s", col), col, "Frequency")
	fig.Add(hist)

	// The overlay is scaled from a density to counts per bin.
	curve, err := analysis.KernelDensity(values, densityPoints)
	if err == nil && len(hist.Bins) > 0 {
		binWidth := hist.Bins[0].Max - hist.Bins[0].Min
		scaled := curve.Scaled(float64(len(values)) * binWidth)
		line := make(plotter.XYs, len(curve.X))
		for i := range curve.X {
			line[i].X = curve.X[i]
			line[i].Y = scaled[i]
		}
		overlay, lerr := plotter.NewLine(line)
		if lerr != nil {
			return errors.RenderError(HistogramFile, lerr)
		}
		overlay.LineStyle.Color = darkBlue
		overlay.LineStyle.Width = vg.Points(1.5)
		fig.Add(overlay)
	} else if err != nil {
		p.logger.Debug("[Plotter] density overlay skipped for %s: %v", col, err)
	}

	return p.saveFigure(fig, HistogramFile)
}

// corrGrid adapts a correlation matrix to plotter.GridXYZ. Row 0 of the matrix
// is drawn at the top.
type corrGrid struct {
	corr analysis.CorrelationMatrix
}

func (g corrGrid) Dims() (c, r int) {
	n := g.corr.Size()
	return n, n
}

func (g corrGrid) Z(c, r int) float64 {
	return g.corr.At(g.corr.Size()-1-r, c)
}

func (g corrGrid) X(c int) float64 {
	return float64(c)
}

func (g corrGrid) Y(r int) float64 {
	return float64(r)
}

func (p *Plotter) heatmap(corr analysis.CorrelationMatrix) error {
	coolwarm := moreland.SmoothBlueRed()
	coolwarm.SetMin(-1)
	coolwarm.SetMax(1)

	grid := corrGrid{corr: corr}
	hm := plotter.NewHeatMap(grid, coolwarm.Palette(255))
	hm.Min = -1
	hm.Max = 1
	hm.NaN = color.Gray{Y: 200}

	n := corr.Size()
	labels := plotter.XYLabels{
		XYs:    make(plotter.XYs, 0, n*n),
		Labels: make([]string, 0, n*n),
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			z := grid.Z(c, r)
			text := "nan"
			if !math.IsNaN(z) {
				text = fmt.Sprintf("%.2f", z)
			}
			labels.XYs = append(labels.XYs, plotter.XY{X: grid.X(c), Y: grid.Y(r)})
			labels.Labels = append(labels.Labels, text)
		}
	}
	annotations, err := plotter.NewLabels(labels)
	if err != nil {
		return errors.RenderError(HeatmapFile, err)
	}
	for i := range annotations.TextStyle {
		annotations.TextStyle[i].XAlign = draw.XCenter
		annotations.TextStyle[i].YAlign = draw.YCenter
	}

	fig := newFigure("Correlation Heatmap of Numeric Features", "", "")
	fig.Add(hm, annotations)

	reversed := make([]string, n)
	for i, name := range corr.Columns {
		reversed[n-1-i] = name
	}
	fig.NominalX(corr.Columns...)
	fig.NominalY(reversed...)

	return p.saveFigure(fig, HeatmapFile)
}
