// Package depth scores the per-frame quality of depth sensor readings
// before they are admitted into a volumetric reconstruction pipeline.
//
// A frame is scored on four independent metrics (coverage, smoothness,
// edge quality, noise level), combined into a single bounded quality
// score, and gated against configurable acceptance thresholds. Sparse,
// jittery, or speckled frames corrupt TSDF surfaces; callers use the
// accept/reject decision to drop or down-weight bad frames prior to
// integration.
//
// All entry points are pure functions of their inputs. Nothing in this
// package retains or mutates caller-owned buffers, so concurrent use
// across frames is safe without locking.
package depth

import (
	"image"
)

// Image is a dense depth frame: row-major float64 samples in raw sensor
// units (typically millimetres for RGBD cameras). A sample of exactly 0
// means "no reading"; that is the only validity convention. Negative
// depths are not modelled.
type Image struct {
	W, H int
	Pix  []float64 // len W*H, row-major
}

// NewImage allocates a zeroed (all-invalid) frame of the given size.
// Non-positive dimensions yield an empty frame.
func NewImage(w, h int) *Image {
	if w <= 0 || h <= 0 {
		return &Image{}
	}
	return &Image{W: w, H: h, Pix: make([]float64, w*h)}
}

// FromFloats wraps a row-major sample slice as an Image. The slice is
// copied so the caller keeps ownership of its buffer. Returns an empty
// frame when len(pix) != w*h.
func FromFloats(w, h int, pix []float64) *Image {
	if w <= 0 || h <= 0 || len(pix) != w*h {
		return &Image{}
	}
	img := NewImage(w, h)
	copy(img.Pix, pix)
	return img
}

// FromGray16 converts a 16-bit grayscale image (the common PNG encoding
// for depth frames) into an Image, preserving raw sensor units.
func FromGray16(src *image.Gray16) *Image {
	b := src.Bounds()
	img := NewImage(b.Dx(), b.Dy())
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			img.Pix[y*img.W+x] = float64(src.Gray16At(b.Min.X+x, b.Min.Y+y).Y)
		}
	}
	return img
}

// At returns the sample at (x, y). No bounds checking; callers iterate
// within W and H.
func (img *Image) At(x, y int) float64 { return img.Pix[y*img.W+x] }

// Set writes the sample at (x, y).
func (img *Image) Set(x, y int, v float64) { img.Pix[y*img.W+x] = v }

// Empty reports whether the frame has zero pixels.
func (img *Image) Empty() bool { return img == nil || img.W*img.H == 0 }

// ValidCount returns the number of pixels with an actual reading (> 0).
func (img *Image) ValidCount() int {
	if img.Empty() {
		return 0
	}
	n := 0
	for _, v := range img.Pix {
		if v > 0 {
			n++
		}
	}
	return n
}

// validValues collects the samples of all valid pixels.
func (img *Image) validValues() []float64 {
	if img.Empty() {
		return nil
	}
	vals := make([]float64, 0, len(img.Pix))
	for _, v := range img.Pix {
		if v > 0 {
			vals = append(vals, v)
		}
	}
	return vals
}

// ColorImage is a 3-channel interleaved byte grid co-indexed with a
// depth frame for the alignment sanity check.
type ColorImage struct {
	W, H int
	Pix  []uint8 // len W*H*3, row-major BGR/RGB (channel order is irrelevant here)
}

// NewColorImage allocates a zeroed colour frame.
func NewColorImage(w, h int) *ColorImage {
	if w <= 0 || h <= 0 {
		return &ColorImage{}
	}
	return &ColorImage{W: w, H: h, Pix: make([]uint8, w*h*3)}
}

// ColorFromImage converts any decoded image into a ColorImage.
func ColorFromImage(src image.Image) *ColorImage {
	b := src.Bounds()
	c := NewColorImage(b.Dx(), b.Dy())
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			r, g, bl, _ := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := (y*c.W + x) * 3
			c.Pix[i] = uint8(r >> 8)
			c.Pix[i+1] = uint8(g >> 8)
			c.Pix[i+2] = uint8(bl >> 8)
		}
	}
	return c
}

// Empty reports whether the colour frame has zero pixels.
func (c *ColorImage) Empty() bool { return c == nil || c.W*c.H == 0 }

// hasContent reports whether any channel of any pixel is nonzero.
func (c *ColorImage) hasContent() bool {
	for _, v := range c.Pix {
		if v > 0 {
			return true
		}
	}
	return false
}
