package plots

import (
	"gotrends/internal/dataset"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Categorical draws one horizontal box per numeric column. Unlike the other
// figures it has no minimum column count: without numeric columns an empty
// figure is saved. Missing values are left out of each box.
func (p *Plotter) Categorical(frame *dataset.Frame) error {
	numeric := frame.NumericColumns()

	fig := newFigure("Box Plot of numeric Features", "", "")
	for i, name := range numeric {
		values, err := frame.Values(name)
		if err != nil {
			return err
		}
		values = dropNaN(values)
		if len(values) == 0 {
			// keep the tick, there is nothing to box
			continue
		}

		box, err := plotter.NewBoxPlot(vg.Points(20), float64(i), plotter.Values(values))
		if err != nil {
			return err
		}
		box.Horizontal = true
		box.FillColor = set2[i%len(set2)]
		fig.Add(box)
	}
	if len(numeric) > 0 {
		fig.NominalY(numeric...)
	}

	if err := p.saveFigure(fig, CategoricalFile); err != nil {
		return err
	}
	p.confirm("Categorical plot saved as '%s'.", CategoricalFile)
	return nil
}
