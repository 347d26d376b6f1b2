package depth

import "gonum.org/v1/gonum/stat"

// The four per-frame metrics. Each is a pure function of the frame (and
// the assessor's tuning) returning a score in [0, 1]. Degenerate inputs
// degrade to 0 rather than erroring; see the per-metric comments for the
// exact fallback policy.

// Coverage returns the fraction of pixels with a valid (> 0) reading.
// An empty frame scores 0.
func (a *Assessor) Coverage(img *Image) float64 {
	if img.Empty() {
		return 0
	}
	return float64(img.ValidCount()) / float64(img.W*img.H)
}

// Smoothness scores the global dispersion of valid depth values. A
// spatially coherent surface has a low coefficient of variation
// (population std-dev / mean), which is scale-invariant across depth
// units; 1/(1+cv) maps zero dispersion to a perfect 1.0 with smooth
// decay. Frames with fewer than two valid pixels, or a valid mean of
// exactly zero, score 0.
func (a *Assessor) Smoothness(img *Image) float64 {
	valid := img.validValues()
	if len(valid) < 2 {
		return 0
	}
	mean := stat.Mean(valid, nil)
	if mean == 0 {
		return 0
	}
	cv := stat.PopStdDev(valid, nil) / mean
	return clamp01(1.0 / (1.0 + cv))
}

// EdgeQuality scores how well-defined the frame's depth discontinuities
// are: the mean Sobel gradient magnitude over valid pixels, normalised
// by the 95th-percentile magnitude so a few outlier spikes cannot
// dominate the scale. This is a heuristic proxy for boundary sharpness,
// not a segmentation measure. Frames below the minimum valid-pixel count
// score 0; gradient magnitude at invalid pixels is forced to 0 so gaps
// do not pollute the normalisation or the mean.
func (a *Assessor) EdgeQuality(img *Image) float64 {
	if img.Empty() || img.ValidCount() < a.tuning.GetMinValidPixels() {
		return 0
	}

	mag := gradientMagnitude(img)
	validMags := make([]float64, 0, len(mag))
	for i, v := range img.Pix {
		if v > 0 {
			validMags = append(validMags, mag[i])
		} else {
			mag[i] = 0
		}
	}

	// Normalise by a high order statistic of the valid magnitudes. If
	// that percentile is 0 (a perfectly flat frame) the magnitudes are
	// left unnormalised rather than divided by zero.
	scale := percentile(validMags, a.tuning.GetGradientPercentile())

	var sum float64
	n := 0
	for i, v := range img.Pix {
		if v <= 0 {
			continue
		}
		m := mag[i]
		if scale > 0 {
			m /= scale
		}
		sum += m
		n++
	}
	return clamp01(sum / float64(n))
}

// NoiseLevel scores sensor noise via the variance of a second-derivative
// (Laplacian-style) response over valid pixels: speckle produces high
// local curvature variance. The variance maps to a score through
// 1/(1+variance/noiseThreshold), so zero noise is a perfect 1.0 with
// smooth decay. The reference scale is tuned to the depth unit in use.
// Frames below the minimum valid-pixel count score 0.
func (a *Assessor) NoiseLevel(img *Image) float64 {
	if img.Empty() || img.ValidCount() < a.tuning.GetMinValidPixels() {
		return 0
	}

	resp := laplacianResponse(img, a.tuning.GetNoiseWindow())
	validResp := make([]float64, 0, len(resp))
	for i, v := range img.Pix {
		if v > 0 {
			validResp = append(validResp, resp[i])
		}
	}

	variance := stat.PopVariance(validResp, nil)
	return clamp01(1.0 / (1.0 + variance/a.tuning.GetNoiseThreshold()))
}

// Coverage is the package-level form of Assessor.Coverage using default
// tuning.
func Coverage(img *Image) float64 { return defaultAssessor.Coverage(img) }

// Smoothness is the package-level form of Assessor.Smoothness using
// default tuning.
func Smoothness(img *Image) float64 { return defaultAssessor.Smoothness(img) }

// EdgeQuality is the package-level form of Assessor.EdgeQuality using
// default tuning.
func EdgeQuality(img *Image) float64 { return defaultAssessor.EdgeQuality(img) }

// NoiseLevel is the package-level form of Assessor.NoiseLevel using
// default tuning.
func NoiseLevel(img *Image) float64 { return defaultAssessor.NoiseLevel(img) }

// NoiseLevelK scores noise with an explicit Laplacian aperture instead
// of the tuned default.
func NoiseLevelK(img *Image, window int) float64 {
	if window < 3 || window%2 == 0 {
		window = 5
	}
	a := NewAssessor(&Tuning{NoiseWindow: &window})
	return a.NoiseLevel(img)
}
