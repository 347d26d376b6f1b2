package depth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Tuning collects the numeric constants of the quality metrics so callers
// with different depth units or sensor resolutions can retune without
// touching metric code. Fields are pointers so a partial JSON file only
// overrides what it names; the Get* accessors supply the documented
// defaults for everything else.
type Tuning struct {
	// Metric params
	MinValidPixels     *int     `json:"min_valid_pixels,omitempty"`
	NoiseThreshold     *float64 `json:"noise_threshold,omitempty"`
	NoiseWindow        *int     `json:"noise_window,omitempty"`
	GradientPercentile *float64 `json:"gradient_percentile,omitempty"`

	// Aggregation weights
	CoverageWeight   *float64 `json:"coverage_weight,omitempty"`
	SmoothnessWeight *float64 `json:"smoothness_weight,omitempty"`
	EdgeWeight       *float64 `json:"edge_weight,omitempty"`
	NoiseWeight      *float64 `json:"noise_weight,omitempty"`

	// Acceptance thresholds
	MinQuality    *float64 `json:"min_quality,omitempty"`
	MinCoverage   *float64 `json:"min_coverage,omitempty"`
	MinSmoothness *float64 `json:"min_smoothness,omitempty"`
}

// LoadTuning loads a Tuning from a JSON file. The file must have a .json
// extension and stay under the max file size. Omitted fields keep their
// defaults, so partial configs are safe.
func LoadTuning(path string) (*Tuning, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("tuning file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat tuning file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("tuning file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}

	t := &Tuning{}
	if err := json.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning JSON: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}

	return t, nil
}

// Validate checks that any supplied values are usable. Weight fields may
// individually be zero but the four together must keep a positive sum;
// a config that zeroes the whole weight vector is rejected here rather
// than silently falling back at scoring time.
func (t *Tuning) Validate() error {
	if t.MinValidPixels != nil && *t.MinValidPixels < 0 {
		return fmt.Errorf("min_valid_pixels must be non-negative, got %d", *t.MinValidPixels)
	}
	if t.NoiseThreshold != nil && *t.NoiseThreshold <= 0 {
		return fmt.Errorf("noise_threshold must be positive, got %f", *t.NoiseThreshold)
	}
	if t.NoiseWindow != nil {
		if *t.NoiseWindow < 3 || *t.NoiseWindow%2 == 0 {
			return fmt.Errorf("noise_window must be an odd integer >= 3, got %d", *t.NoiseWindow)
		}
	}
	if t.GradientPercentile != nil {
		if *t.GradientPercentile <= 0 || *t.GradientPercentile > 1 {
			return fmt.Errorf("gradient_percentile must be in (0, 1], got %f", *t.GradientPercentile)
		}
	}

	for name, w := range map[string]*float64{
		"coverage_weight":   t.CoverageWeight,
		"smoothness_weight": t.SmoothnessWeight,
		"edge_weight":       t.EdgeWeight,
		"noise_weight":      t.NoiseWeight,
	} {
		if w != nil && *w < 0 {
			return fmt.Errorf("%s must be non-negative, got %f", name, *w)
		}
	}
	if err := t.Weights().Validate(); err != nil {
		return err
	}

	for name, v := range map[string]*float64{
		"min_quality":    t.MinQuality,
		"min_coverage":   t.MinCoverage,
		"min_smoothness": t.MinSmoothness,
	} {
		if v != nil && (*v < 0 || *v > 1) {
			return fmt.Errorf("%s must be between 0 and 1, got %f", name, *v)
		}
	}

	return nil
}

// GetMinValidPixels returns the minimum valid-pixel count below which the
// gradient-based metrics report 0, or the default.
func (t *Tuning) GetMinValidPixels() int {
	if t == nil || t.MinValidPixels == nil {
		return 100
	}
	return *t.MinValidPixels
}

// GetNoiseThreshold returns the Laplacian-variance normalisation scale.
// Tuned to millimetre depth units; callers using metres or disparity
// must retune.
func (t *Tuning) GetNoiseThreshold() float64 {
	if t == nil || t.NoiseThreshold == nil {
		return 1000.0
	}
	return *t.NoiseThreshold
}

// GetNoiseWindow returns the Laplacian aperture size.
func (t *Tuning) GetNoiseWindow() int {
	if t == nil || t.NoiseWindow == nil {
		return 5
	}
	return *t.NoiseWindow
}

// GetGradientPercentile returns the order statistic used to normalise
// gradient magnitudes in the edge metric.
func (t *Tuning) GetGradientPercentile() float64 {
	if t == nil || t.GradientPercentile == nil {
		return 0.95
	}
	return *t.GradientPercentile
}

// Weights returns the aggregation weight vector, with defaults for any
// unset field.
func (t *Tuning) Weights() Weights {
	w := DefaultWeights()
	if t == nil {
		return w
	}
	if t.CoverageWeight != nil {
		w.Coverage = *t.CoverageWeight
	}
	if t.SmoothnessWeight != nil {
		w.Smoothness = *t.SmoothnessWeight
	}
	if t.EdgeWeight != nil {
		w.Edge = *t.EdgeWeight
	}
	if t.NoiseWeight != nil {
		w.Noise = *t.NoiseWeight
	}
	return w
}

// Thresholds returns the acceptance threshold set, with defaults for any
// unset field.
func (t *Tuning) Thresholds() Thresholds {
	th := DefaultThresholds()
	if t == nil {
		return th
	}
	if t.MinQuality != nil {
		th.MinQuality = *t.MinQuality
	}
	if t.MinCoverage != nil {
		th.MinCoverage = *t.MinCoverage
	}
	if t.MinSmoothness != nil {
		th.MinSmoothness = *t.MinSmoothness
	}
	return th
}
