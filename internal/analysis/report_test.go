package analysis

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySkew(t *testing.T) {
	tests := []struct {
		skew float64
		want string
	}{
		{2.5, "highlt right skewed"},
		{2.0, "right skewed"},
		{0.5, "right skewed"},
		{0, "not skewed"},
		{-0.5, "left skewed"},
		{-2.0, "left skewed"},
		{-3.1, "highlt left skewed"},
		{math.NaN(), "not skewed"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifySkew(tt.skew), "skew=%v", tt.skew)
	}
}

func TestClassifyKurtosis(t *testing.T) {
	assert.Equal(t, "leptokurtic", ClassifyKurtosis(1.0))
	assert.Equal(t, "platykurtic", ClassifyKurtosis(-1.0))
	assert.Equal(t, "mesokurtic", ClassifyKurtosis(0.0))
}

func TestWriting(t *testing.T) {
	var buf bytes.Buffer
	m := Moments{Mean: 3, StdDev: math.Sqrt(2.5), Skewness: 0, ExcessKurtosis: -1.3}

	Writing(&buf, m, "score")

	want := "For the attribute score:\n" +
		"Mean = 3.00, Standard Deviation = 1.58, Skewness = 0.00, and Excess Kurtosis = -1.30.\n" +
		"The data was not skewed and platykurtic.\n"
	assert.Equal(t, want, buf.String())
}
