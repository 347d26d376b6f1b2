package depth

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// clamp01 bounds a score to [0, 1]. Every public score in this package
// passes through it so degenerate inputs can never leak an out-of-range
// or NaN value to the caller.
func clamp01(v float64) float64 {
	switch {
	case v != v: // NaN
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// percentile returns the p-quantile (0..1) of vals using linear
// interpolation between order statistics. vals is sorted in place.
func percentile(vals []float64, p float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sort.Float64s(vals)
	return stat.Quantile(p, stat.LinInterp, vals, nil)
}
