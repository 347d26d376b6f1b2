package depth

// Breakdown is the fixed set of per-metric scores, each in [0, 1]. The
// fields are always the raw unweighted metric values regardless of the
// weights used to combine them, so callers can recover any weighting
// from the breakdown alone.
type Breakdown struct {
	Coverage    float64 `json:"coverage"`
	Smoothness  float64 `json:"smoothness"`
	EdgeQuality float64 `json:"edge_quality"`
	NoiseLevel  float64 `json:"noise_level"`
}

// Result pairs the aggregate quality score with its metric breakdown.
type Result struct {
	Score     float64   `json:"score"`
	Breakdown Breakdown `json:"breakdown"`
}

// Weights is the aggregation weight vector, one nonnegative weight per
// metric. Weights are normalised to sum to 1 before use, so only their
// ratios matter.
type Weights struct {
	Coverage   float64 `json:"coverage"`
	Smoothness float64 `json:"smoothness"`
	Edge       float64 `json:"edge"`
	Noise      float64 `json:"noise"`
}

// DefaultWeights returns the standard weighting: coverage dominates
// because a sparse frame is useless to the integrator no matter how
// clean its valid region looks.
func DefaultWeights() Weights {
	return Weights{Coverage: 0.4, Smoothness: 0.3, Edge: 0.2, Noise: 0.1}
}

// Validate rejects negative weights and an all-zero weight vector.
// Callers that skip validation still get deterministic behaviour: see
// normalized.
func (w Weights) Validate() error {
	if w.Coverage < 0 || w.Smoothness < 0 || w.Edge < 0 || w.Noise < 0 {
		return errNegativeWeight
	}
	if w.Coverage+w.Smoothness+w.Edge+w.Noise <= 0 {
		return errZeroWeightSum
	}
	return nil
}

// normalized scales the weights to sum to 1. A non-positive sum falls
// back to equal weighting rather than dividing by zero; Validate exists
// for callers that prefer to fail fast on such configs.
func (w Weights) normalized() Weights {
	total := w.Coverage + w.Smoothness + w.Edge + w.Noise
	if total <= 0 {
		return Weights{Coverage: 0.25, Smoothness: 0.25, Edge: 0.25, Noise: 0.25}
	}
	return Weights{
		Coverage:   w.Coverage / total,
		Smoothness: w.Smoothness / total,
		Edge:       w.Edge / total,
		Noise:      w.Noise / total,
	}
}

// Assessor computes quality scores under a fixed tuning. The zero-cost
// default is shared by the package-level functions; construct your own
// to rescale thresholds for a different depth unit or resolution.
type Assessor struct {
	tuning *Tuning
}

// NewAssessor returns an assessor using the given tuning. A nil tuning
// means all defaults.
func NewAssessor(t *Tuning) *Assessor {
	return &Assessor{tuning: t}
}

var defaultAssessor = NewAssessor(nil)

// Quality computes the four metrics and combines them with the
// assessor's configured weights. An empty frame short-circuits to a
// zero score and an all-zero breakdown.
func (a *Assessor) Quality(img *Image) (float64, Breakdown) {
	return a.QualityWeighted(img, a.tuning.Weights())
}

// QualityWeighted combines the four metrics under an explicit weight
// vector. The returned breakdown holds the unweighted metric values;
// only the aggregate reflects the weighting.
func (a *Assessor) QualityWeighted(img *Image, w Weights) (float64, Breakdown) {
	if img.Empty() {
		return 0, Breakdown{}
	}

	nw := w.normalized()
	b := Breakdown{
		Coverage:    a.Coverage(img),
		Smoothness:  a.Smoothness(img),
		EdgeQuality: a.EdgeQuality(img),
		NoiseLevel:  a.NoiseLevel(img),
	}

	score := nw.Coverage*b.Coverage +
		nw.Smoothness*b.Smoothness +
		nw.Edge*b.EdgeQuality +
		nw.Noise*b.NoiseLevel

	return clamp01(score), b
}

// Quality is the package-level aggregator with default tuning and
// weights.
func Quality(img *Image) (float64, Breakdown) {
	return defaultAssessor.Quality(img)
}

// QualityWeighted is the package-level aggregator with default tuning
// and explicit weights.
func QualityWeighted(img *Image, w Weights) (float64, Breakdown) {
	return defaultAssessor.QualityWeighted(img, w)
}
