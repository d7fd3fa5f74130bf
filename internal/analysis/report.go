package analysis

import (
	"fmt"
	"io"
)

// ClassifySkew labels a skewness value. Rules are checked in order: > 2, < -2, > 0, < 0.
func ClassifySkew(skew float64) string {
	switch {
	case skew > 2:
		return "highlt right skewed"
	case skew < -2:
		return "highlt left skewed"
	case skew > 0:
		return "right skewed"
	case skew < 0:
		return "left skewed"
	default:
		return "not skewed"
	}
}

// ClassifyKurtosis labels an excess kurtosis value.
func ClassifyKurtosis(kurt float64) string {
	switch {
	case kurt > 0:
		return "leptokurtic"
	case kurt < 0:
		return "platykurtic"
	default:
		return "mesokurtic"
	}
}

// Writing prints the moments of col and a one-line description of their shape.
func Writing(w io.Writer, m Moments, col string) {
	fmt.Fprintf(w, "For the attribute %s:\n", col)
	fmt.Fprintf(w, "Mean = %.2f, Standard Deviation = %.2f, Skewness = %.2f, and Excess Kurtosis = %.2f.\n",
		m.Mean, m.StdDev, m.Skewness, m.ExcessKurtosis)
	fmt.Fprintf(w, "The data was %s and %s.\n", ClassifySkew(m.Skewness), ClassifyKurtosis(m.ExcessKurtosis))
}
