package depth

import "errors"

var (
	errNegativeWeight = errors.New("depth: aggregation weights must be non-negative")
	errZeroWeightSum  = errors.New("depth: aggregation weights sum to zero")
)

// Thresholds is the acceptance policy for the gate: three independent
// minimums, all in [0, 1]. The gate is conjunctive, so failing any one
// criterion rejects the frame.
type Thresholds struct {
	MinQuality    float64 `json:"min_quality"`
	MinCoverage   float64 `json:"min_coverage"`
	MinSmoothness float64 `json:"min_smoothness"`
}

// DefaultThresholds returns the standard acceptance policy.
func DefaultThresholds() Thresholds {
	return Thresholds{MinQuality: 0.5, MinCoverage: 0.3, MinSmoothness: 0.4}
}

// IsAcceptable decides whether a frame may be integrated. It scores the
// frame with the assessor's configured weights, then requires the
// aggregate, coverage, and smoothness to each clear their minimum. The
// explicit coverage and smoothness floors stop a high edge or noise
// score from masking a genuinely sparse or jittery frame behind an
// acceptable-looking aggregate.
func (a *Assessor) IsAcceptable(img *Image, th Thresholds) (bool, float64, Breakdown) {
	score, b := a.Quality(img)

	ok := score >= th.MinQuality &&
		b.Coverage >= th.MinCoverage &&
		b.Smoothness >= th.MinSmoothness

	return ok, score, b
}

// IsAcceptable is the package-level gate with default tuning.
func IsAcceptable(img *Image, th Thresholds) (bool, float64, Breakdown) {
	return defaultAssessor.IsAcceptable(img, th)
}
