package depth

import "testing"

// colorFrame returns a w x h colour image filled with the given byte.
func colorFrame(w, h int, v uint8) *ColorImage {
	c := NewColorImage(w, h)
	for i := range c.Pix {
		c.Pix[i] = v
	}
	return c
}

func TestAlignment_MatchingPair(t *testing.T) {
	d := uniformFrame(100, 100, 1500)
	c := colorFrame(100, 100, 128)
	if got := Alignment(d, c, 1000.0); got != 1.0 {
		t.Errorf("Alignment = %v, want 1.0", got)
	}
}

func TestAlignment_ShapeMismatch(t *testing.T) {
	d := uniformFrame(100, 100, 1500)
	c := colorFrame(50, 50, 128)
	if got := Alignment(d, c, 1000.0); got != 0 {
		t.Errorf("Alignment(100x100, 50x50) = %v, want 0", got)
	}
}

func TestAlignment_EmptyInputs(t *testing.T) {
	d := uniformFrame(10, 10, 500)
	c := colorFrame(10, 10, 50)
	if got := Alignment(NewImage(0, 0), c, 1000.0); got != 0 {
		t.Errorf("Alignment(empty depth) = %v, want 0", got)
	}
	if got := Alignment(d, NewColorImage(0, 0), 1000.0); got != 0 {
		t.Errorf("Alignment(empty color) = %v, want 0", got)
	}
	if got := Alignment(nil, nil, 1000.0); got != 0 {
		t.Errorf("Alignment(nil, nil) = %v, want 0", got)
	}
}

func TestAlignment_RequiresContentOnBothSides(t *testing.T) {
	zeroDepth := NewImage(20, 20)
	zeroColor := NewColorImage(20, 20)
	liveDepth := uniformFrame(20, 20, 900)
	liveColor := colorFrame(20, 20, 1)

	if got := Alignment(zeroDepth, zeroColor, 1000.0); got != 0 {
		t.Errorf("Alignment(zero, zero) = %v, want 0", got)
	}
	if got := Alignment(zeroDepth, liveColor, 1000.0); got != 0 {
		t.Errorf("Alignment(zero depth, live color) = %v, want 0", got)
	}
	if got := Alignment(liveDepth, zeroColor, 1000.0); got != 0 {
		t.Errorf("Alignment(live depth, zero color) = %v, want 0", got)
	}
	if got := Alignment(liveDepth, liveColor, 1000.0); got != 1.0 {
		t.Errorf("Alignment(live, live) = %v, want 1.0", got)
	}
}

func TestAlignment_DepthScaleUnused(t *testing.T) {
	// depthScale is reserved; any value must leave the result alone.
	d := uniformFrame(30, 30, 1500)
	c := colorFrame(30, 30, 10)
	for _, scale := range []float64{0, 1, 1000, -5} {
		if got := Alignment(d, c, scale); got != 1.0 {
			t.Errorf("Alignment(scale=%v) = %v, want 1.0", scale, got)
		}
	}
}

func TestAlignment_BinaryOutput(t *testing.T) {
	// The check only ever reports 0.0 or 1.0.
	pairs := []struct {
		d *Image
		c *ColorImage
	}{
		{NewImage(0, 0), NewColorImage(0, 0)},
		{uniformFrame(5, 5, 1), colorFrame(5, 5, 1)},
		{uniformFrame(5, 5, 1), colorFrame(6, 5, 1)},
		{NewImage(5, 5), colorFrame(5, 5, 1)},
	}
	for i, p := range pairs {
		got := Alignment(p.d, p.c, 1000.0)
		if got != 0 && got != 1 {
			t.Errorf("pair %d: Alignment = %v, want exactly 0.0 or 1.0", i, got)
		}
	}
}
