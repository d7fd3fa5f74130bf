package plots

import (
	"fmt"
	"math"

	"gotrends/internal/dataset"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Relational draws the first numeric column against the second as a scatter
// plot. With fewer than two numeric columns it prints GuardMessage and writes
// nothing. Rows missing either value are not drawn.
func (p *Plotter) Relational(frame *dataset.Frame) error {
	numeric := frame.NumericColumns()
	if len(numeric) < 2 {
		fmt.Fprintln(p.Out, GuardMessage)
		return nil
	}
	xName, yName := numeric[0], numeric[1]

	xs, err := frame.Values(xName)
	if err != nil {
		return err
	}
	ys, err := frame.Values(yName)
	if err != nil {
		return err
	}

	points := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		points = append(points, plotter.XY{X: xs[i], Y: ys[i]})
	}

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = seaGreen
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(3)

	fig := newFigure(fmt.Sprintf("Relationship between %s and %s", xName, yName), xName, yName)
	fig.Add(plotter.NewGrid(), scatter)

	if err := p.saveFigure(fig, RelationalFile); err != nil {
		return err
	}
	p.confirm("Relational plot saved as '%s'.", RelationalFile)
	return nil
}
