// Package synth generates synthetic depth frames for tests, demos, and
// tuning experiments. Each preset exaggerates one failure mode the
// quality gate is supposed to catch.
package synth

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/fathom-robotics/depthgate/internal/depth"
)

// Preset names accepted by Generate.
const (
	Clean  = "clean"  // smooth sloped surface, full coverage
	Sparse = "sparse" // clean surface with most readings dropped
	Noisy  = "noisy"  // heavy per-pixel speckle
	Mixed  = "mixed"  // moderate dropout plus moderate speckle
)

// Presets lists the valid preset names for flag help and validation.
var Presets = []string{Clean, Sparse, Noisy, Mixed}

// baseDepthMM is the mid-scene distance of the synthetic surface, in
// millimetres (the usual RGBD sensor unit).
const baseDepthMM = 1500.0

// Generate produces a w x h depth frame for the named preset using the
// given source of randomness. An unknown preset is an error.
func Generate(preset string, w, h int, rng *rand.Rand) (*depth.Image, error) {
	switch preset {
	case Clean:
		return surface(w, h), nil
	case Sparse:
		img := surface(w, h)
		dropout(img, 0.85, rng)
		return img, nil
	case Noisy:
		img := surface(w, h)
		speckle(img, 600, rng)
		return img, nil
	case Mixed:
		img := surface(w, h)
		dropout(img, 0.3, rng)
		speckle(img, 150, rng)
		return img, nil
	default:
		return nil, fmt.Errorf("unknown preset %q (valid: %v)", preset, Presets)
	}
}

// surface builds a gently sloped, fully covered scene: a plane tilted in
// both axes with a shallow bump in the middle, roughly what a wall and
// workpiece look like to a fixed sensor.
func surface(w, h int) *depth.Image {
	img := depth.NewImage(w, h)
	cx, cy := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := baseDepthMM + 2.0*float64(x) + 1.0*float64(y)
			dx, dy := float64(x)-cx, float64(y)-cy
			r := math.Sqrt(dx*dx + dy*dy)
			if r < float64(min(w, h))/4 {
				v -= 200 // the workpiece sits proud of the wall
			}
			img.Set(x, y, v)
		}
	}
	return img
}

// dropout invalidates the given fraction of pixels, simulating the
// holes left by absorbent or oblique surfaces.
func dropout(img *depth.Image, fraction float64, rng *rand.Rand) {
	for i := range img.Pix {
		if rng.Float64() < fraction {
			img.Pix[i] = 0
		}
	}
}

// speckle adds zero-mean uniform noise of the given amplitude to every
// valid pixel, simulating sensor jitter.
func speckle(img *depth.Image, amplitude float64, rng *rand.Rand) {
	for i, v := range img.Pix {
		if v <= 0 {
			continue
		}
		n := v + (rng.Float64()*2-1)*amplitude
		if n < 1 {
			n = 1 // keep the pixel valid; dropout is a separate defect
		}
		img.Pix[i] = n
	}
}
