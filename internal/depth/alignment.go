package depth

// Alignment is a coarse sanity check that a depth/colour pair could
// plausibly belong to the same capture: both frames must be non-empty,
// share their height and width exactly, and each contain at least one
// nonzero sample. It returns exactly 1.0 when all of that holds and 0.0
// otherwise.
//
// This is a presence-and-shape check only. It does not verify pixelwise
// geometric alignment; depthScale is accepted for interface stability
// but unused, reserved for a future edge-correspondence refinement. Do
// not read a 1.0 as a sub-pixel alignment guarantee.
func Alignment(img *Image, color *ColorImage, depthScale float64) float64 {
	_ = depthScale

	if img.Empty() || color.Empty() {
		return 0
	}
	if img.W != color.W || img.H != color.H {
		return 0
	}

	if img.ValidCount() > 0 && color.hasContent() {
		return 1.0
	}
	return 0
}
