package plots

import (
	"fmt"
	"math"
	"os"

	"gotrends/internal/analysis"
	"gotrends/internal/dataset"
	"gotrends/internal/errors"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot/plotter"
)

// coolwarm end points used by the HTML heatmap's visual map.
var coolwarmStops = []string{"#3b4cc0", "#dddddd", "#b40426"}

// WriteHTMLReport renders an interactive page for the frame into path: a
// scatter of the first two numeric columns, a histogram of the first one and
// the correlation heatmap. Charts whose inputs are missing are left out.
func (p *Plotter) WriteHTMLReport(frame *dataset.Frame, path string) (err error) {
	page := components.NewPage()
	page.PageTitle = "gotrends report"

	numeric := frame.NumericColumns()
	if len(numeric) >= 2 {
		scatter, err := scatterChart(frame, numeric[0], numeric[1])
		if err != nil {
			return err
		}
		page.AddCharts(scatter)
	}
	if len(numeric) >= 1 {
		bar, err := histogramChart(frame, numeric[0], p.Bins)
		if err != nil {
			return err
		}
		page.AddCharts(bar)
	}
	if len(numeric) >= 2 {
		corr, err := analysis.Correlation(frame)
		if err != nil {
			return err
		}
		page.AddCharts(heatmapChart(corr))
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.RenderError(path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.RenderError(path, cerr)
		}
	}()

	if err = page.Render(file); err != nil {
		return errors.RenderError(path, err)
	}
	p.confirm("Interactive report saved as '%s'.", path)
	return nil
}

func scatterChart(frame *dataset.Frame, xName, yName string) (*charts.Scatter, error) {
	xs, err := frame.Values(xName)
	if err != nil {
		return nil, err
	}
	ys, err := frame.Values(yName)
	if err != nil {
		return nil, err
	}

	items := make([]opts.ScatterData, 0, len(xs))
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		items = append(items, opts.ScatterData{Value: [2]float64{xs[i], ys[i]}, SymbolSize: 6})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Relationship between %s and %s", xName, yName)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Name: xName, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName, Type: "value"}),
	)
	scatter.AddSeries(yName, items)
	return scatter, nil
}

func histogramChart(frame *dataset.Frame, col string, bins int) (*charts.Bar, error) {
	values, err := frame.Values(col)
	if err != nil {
		return nil, err
	}
	labels, counts, err := binCounts(values, bins)
	if err != nil {
		return nil, err
	}

	items := make([]opts.BarData, len(counts))
	for i, c := range counts {
		items[i] = opts.BarData{Value: c}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Distribution of %s", col)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Frequency"}),
	)
	bar.SetXAxis(labels).AddSeries(col, items)
	return bar, nil
}

// binCounts bins values the same way as the PNG histogram and labels each bin by its centre.
func binCounts(values []float64, bins int) ([]string, []float64, error) {
	values = dropNaN(values)
	if len(values) == 0 {
		return nil, nil, nil
	}
	hist, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return nil, nil, errors.RenderError("histogram bins", err)
	}

	labels := make([]string, len(hist.Bins))
	counts := make([]float64, len(hist.Bins))
	for i, b := range hist.Bins {
		labels[i] = fmt.Sprintf("%.2f", (b.Min+b.Max)/2)
		counts[i] = b.Weight
	}
	return labels, counts, nil
}

func heatmapChart(corr analysis.CorrelationMatrix) *charts.HeatMap {
	n := corr.Size()
	items := make([]opts.HeatMapData, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := corr.At(i, j)
			var value interface{} = "-"
			if !math.IsNaN(v) {
				value = math.Round(v*100) / 100
			}
			items = append(items, opts.HeatMapData{Value: [3]interface{}{j, i, value}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Correlation Heatmap of Numeric Features"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: corr.Columns}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: corr.Columns}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: true,
			Min:        -1,
			Max:        1,
			InRange:    &opts.VisualMapInRange{Color: coolwarmStops},
		}),
	)
	hm.AddSeries("correlation", items, charts.WithLabelOpts(opts.Label{Show: true}))
	return hm
}
