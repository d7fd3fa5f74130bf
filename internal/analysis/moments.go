// Package analysis computes the summary moments, correlation matrix and density
// estimates used by the report and the figures.
package analysis

import (
	"fmt"
	"math"

	"gotrends/internal/dataset"
	"gotrends/internal/errors"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Moments are the four shape statistics of one numeric column.
type Moments struct {
	Mean           float64
	StdDev         float64 // sample standard deviation (n-1)
	Skewness       float64 // biased Fisher-Pearson coefficient
	ExcessKurtosis float64 // biased, normal distribution = 0
}

// StatisticalAnalysis computes the moments of the named column. The column must
// exist, be numeric and hold no missing values; cleaning is the caller's job and
// a missing value here is reported rather than skipped.
func StatisticalAnalysis(frame *dataset.Frame, col string) (Moments, error) {
	values, err := frame.Values(col)
	if err != nil {
		return Moments{}, err
	}

	missing := 0
	for _, v := range values {
		if math.IsNaN(v) {
			missing++
		}
	}
	if missing > 0 {
		return Moments{}, errors.MissingValues(col, missing)
	}

	m, err := ComputeMoments(values)
	if err != nil {
		return Moments{}, errors.Wrapf(err, "failed to analyse column %q", col)
	}
	return m, nil
}

// ComputeMoments computes mean, sample standard deviation, skewness and excess
// kurtosis. Skewness and kurtosis use the population central moments m2, m3, m4:
// skew = m3/m2^1.5, kurt = m4/m2^2 - 3.
func ComputeMoments(values []float64) (Moments, error) {
	if len(values) == 0 {
		return Moments{}, errors.InvalidInput("no values to analyse")
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return Moments{}, errors.WithCode(errors.CodeInvalidInput, err, "mean")
	}

	// n-1 denominator; a single value gives NaN like the reference tooling.
	stdDev := math.NaN()
	if len(values) > 1 {
		stdDev, err = stats.StandardDeviationSample(values)
		if err != nil {
			return Moments{}, errors.WithCode(errors.CodeInvalidInput, err, "standard deviation")
		}
	}

	m2 := stat.Moment(2, values, nil)
	m3 := stat.Moment(3, values, nil)
	m4 := stat.Moment(4, values, nil)

	return Moments{
		Mean:           mean,
		StdDev:         stdDev,
		Skewness:       m3 / math.Pow(m2, 1.5),
		ExcessKurtosis: m4/(m2*m2) - 3,
	}, nil
}

// String formats the moments with four decimals for log lines.
func (m Moments) String() string {
	return fmt.Sprintf("mean=%.4f std=%.4f skew=%.4f kurt=%.4f", m.Mean, m.StdDev, m.Skewness, m.ExcessKurtosis)
}
