package depth

import "testing"

// skewedFrame is fully covered but wildly dispersed: most pixels sit at
// a shallow depth with a scattering of extreme far readings, driving the
// coefficient of variation (and so the smoothness score) into the
// floor while coverage stays at 1.0.
func skewedFrame(w, h int) *Image {
	img := uniformFrame(w, h, 100)
	for i := 0; i < len(img.Pix); i += 97 {
		img.Pix[i] = 100000
	}
	return img
}

func TestIsAcceptable_GoodFrame(t *testing.T) {
	ok, score, b := IsAcceptable(uniformFrame(100, 100, 1500), DefaultThresholds())
	if !ok {
		t.Errorf("clean uniform frame rejected (score=%v breakdown=%+v)", score, b)
	}
	if score < 0.5 {
		t.Errorf("score = %v, want >= 0.5", score)
	}
}

func TestIsAcceptable_RejectsOnQualityAlone(t *testing.T) {
	// The uniform frame aggregates to 0.8 with coverage and smoothness
	// both 1.0; a 0.9 quality floor must reject it even though the
	// other two criteria pass.
	th := Thresholds{MinQuality: 0.9, MinCoverage: 0.3, MinSmoothness: 0.4}
	ok, score, b := IsAcceptable(uniformFrame(100, 100, 1500), th)
	if ok {
		t.Error("frame accepted despite failing the quality floor")
	}
	if b.Coverage < th.MinCoverage || b.Smoothness < th.MinSmoothness {
		t.Errorf("test premise broken: breakdown %+v fails secondary criteria", b)
	}
	if score >= th.MinQuality {
		t.Errorf("test premise broken: score %v clears the floor", score)
	}
}

func TestIsAcceptable_RejectsOnCoverageAlone(t *testing.T) {
	// Left half valid and flat: smoothness 1.0, coverage 0.5. A 0.6
	// coverage floor must reject regardless of the healthy aggregate.
	img := NewImage(100, 100)
	for y := 0; y < 100; y++ {
		for x := 0; x < 50; x++ {
			img.Set(x, y, 2000)
		}
	}
	th := Thresholds{MinQuality: 0.3, MinCoverage: 0.6, MinSmoothness: 0.4}
	ok, score, b := IsAcceptable(img, th)
	if ok {
		t.Error("frame accepted despite failing the coverage floor")
	}
	if b.Coverage != 0.5 {
		t.Errorf("coverage = %v, want 0.5", b.Coverage)
	}
	if score < th.MinQuality || b.Smoothness < th.MinSmoothness {
		t.Errorf("test premise broken: score=%v breakdown=%+v", score, b)
	}
}

func TestIsAcceptable_RejectsOnSmoothnessAlone(t *testing.T) {
	// High coverage cannot mask a jittery frame: the smoothness floor
	// is an independent criterion.
	ok, _, b := IsAcceptable(skewedFrame(100, 100), DefaultThresholds())
	if ok {
		t.Error("dispersed frame accepted despite failing the smoothness floor")
	}
	if b.Coverage < 0.9 {
		t.Errorf("test premise broken: coverage = %v, want >= 0.9", b.Coverage)
	}
	if b.Smoothness >= 0.4 {
		t.Errorf("test premise broken: smoothness = %v, want < 0.4", b.Smoothness)
	}
}

func TestIsAcceptable_EmptyFrame(t *testing.T) {
	ok, score, b := IsAcceptable(NewImage(0, 0), DefaultThresholds())
	if ok || score != 0 || b != (Breakdown{}) {
		t.Errorf("empty frame: ok=%v score=%v breakdown=%+v, want rejection with zeros", ok, score, b)
	}
}

func TestIsAcceptable_ThresholdsDoNotAlterWeighting(t *testing.T) {
	// The gate always scores with the assessor's weights; thresholds
	// only move the decision boundary.
	img := rampFrame(100, 100, 5)
	_, s1, _ := IsAcceptable(img, DefaultThresholds())
	_, s2, _ := IsAcceptable(img, Thresholds{MinQuality: 0.99, MinCoverage: 0.99, MinSmoothness: 0.99})
	if s1 != s2 {
		t.Errorf("score moved with thresholds: %v vs %v", s1, s2)
	}
}
