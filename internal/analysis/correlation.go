package analysis

import (
	"math"

	"gotrends/internal/dataset"

	"gonum.org/v1/gonum/stat"
)

// CorrelationMatrix is the symmetric Pearson correlation table of the numeric
// columns of a frame, in column order.
type CorrelationMatrix struct {
	Columns []string
	Values  [][]float64
}

// Size returns the number of columns
func (c CorrelationMatrix) Size() int {
	return len(c.Columns)
}

// At returns the coefficient between columns i and j
func (c CorrelationMatrix) At(i, j int) float64 {
	return c.Values[i][j]
}

// Correlation computes pairwise Pearson coefficients over the numeric columns.
// Each pair uses the rows where both values are present; fewer than two such
// rows, or a constant column, yield NaN.
func Correlation(frame *dataset.Frame) (CorrelationMatrix, error) {
	columns := frame.NumericColumns()
	data := make([][]float64, len(columns))
	for i, name := range columns {
		values, err := frame.Values(name)
		if err != nil {
			return CorrelationMatrix{}, err
		}
		data[i] = values
	}

	n := len(columns)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			r := pairwisePearson(data[i], data[j])
			matrix[i][j] = r
			matrix[j][i] = r
		}
	}

	return CorrelationMatrix{Columns: columns, Values: matrix}, nil
}

func pairwisePearson(x, y []float64) float64 {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}
