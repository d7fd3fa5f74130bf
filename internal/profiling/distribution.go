package profiling

import (
	"math"
	"sort"

	"gotrends/internal/dataset"

	"github.com/montanaflynn/stats"
)

// ColumnSummary holds the descriptive statistics of one numeric column,
// computed over its non-missing values.
type ColumnSummary struct {
	Column string
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Describe summarises every numeric column of the frame in column order.
func Describe(frame *dataset.Frame) ([]ColumnSummary, error) {
	columns := frame.NumericColumns()
	summaries := make([]ColumnSummary, 0, len(columns))
	for _, name := range columns {
		values, err := frame.Values(name)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, SummarizeColumn(name, values))
	}
	return summaries, nil
}

// SummarizeColumn computes count, mean, sample standard deviation, extremes
// and quartiles. Missing (NaN) values are skipped; statistics that cannot be
// computed are NaN.
func SummarizeColumn(name string, values []float64) ColumnSummary {
	data := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			data = append(data, v)
		}
	}

	summary := ColumnSummary{
		Column: name,
		Count:  len(data),
		Mean:   math.NaN(),
		StdDev: math.NaN(),
		Min:    math.NaN(),
		Q25:    math.NaN(),
		Median: math.NaN(),
		Q75:    math.NaN(),
		Max:    math.NaN(),
	}
	if len(data) == 0 {
		return summary
	}

	summary.Mean, _ = stats.Mean(data)
	summary.Min, _ = stats.Min(data)
	summary.Max, _ = stats.Max(data)
	if len(data) > 1 {
		summary.StdDev, _ = stats.StandardDeviationSample(data)
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)
	summary.Q25 = quantile(sorted, 0.25)
	summary.Median = quantile(sorted, 0.5)
	summary.Q75 = quantile(sorted, 0.75)

	return summary
}

// quantile interpolates linearly between closest ranks, position (n-1)*p.
func quantile(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}
