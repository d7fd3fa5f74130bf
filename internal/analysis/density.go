package analysis

import (
	"math"

	"gotrends/internal/errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DensityCurve is a Gaussian kernel density estimate sampled on an even grid.
type DensityCurve struct {
	X         []float64
	Density   []float64
	Bandwidth float64
}

// ScottBandwidth returns the Scott's-rule bandwidth, sd * n^(-1/5).
func ScottBandwidth(values []float64) float64 {
	n := float64(len(values))
	return stat.StdDev(values, nil) * math.Pow(n, -0.2)
}

// KernelDensity estimates the density of values at points evenly spaced over
// [min, max]. It needs at least two distinct values.
func KernelDensity(values []float64, points int) (DensityCurve, error) {
	if len(values) < 2 {
		return DensityCurve{}, errors.InvalidInput("kernel density needs at least two values")
	}
	if points < 2 {
		points = 2
	}

	bw := ScottBandwidth(values)
	if bw == 0 || math.IsNaN(bw) {
		return DensityCurve{}, errors.InvalidInput("kernel density needs non-constant values")
	}

	lo, hi := floats.Min(values), floats.Max(values)
	xs := make([]float64, points)
	floats.Span(xs, lo, hi)

	kernels := make([]distuv.Normal, len(values))
	for i, v := range values {
		kernels[i] = distuv.Normal{Mu: v, Sigma: bw}
	}

	density := make([]float64, points)
	weight := 1 / float64(len(values))
	for i, x := range xs {
		var sum float64
		for _, k := range kernels {
			sum += k.Prob(x)
		}
		density[i] = sum * weight
	}

	return DensityCurve{X: xs, Density: density, Bandwidth: bw}, nil
}

// Scaled returns the curve multiplied by factor, e.g. n*binWidth to overlay a
// count histogram.
func (d DensityCurve) Scaled(factor float64) []float64 {
	out := make([]float64, len(d.Density))
	floats.ScaleTo(out, factor, d.Density)
	return out
}
