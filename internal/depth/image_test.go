package depth

import (
	"image"
	"image/color"
	"testing"
)

func color16(v uint16) color.Gray16 { return color.Gray16{Y: v} }

func TestNewImage_Degenerate(t *testing.T) {
	for _, c := range [][2]int{{0, 0}, {-1, 5}, {5, 0}} {
		img := NewImage(c[0], c[1])
		if !img.Empty() {
			t.Errorf("NewImage(%d, %d) not empty", c[0], c[1])
		}
	}
}

func TestFromFloats_CopiesBuffer(t *testing.T) {
	buf := []float64{1, 2, 3, 4}
	img := FromFloats(2, 2, buf)
	buf[0] = 99
	if img.At(0, 0) != 1 {
		t.Error("FromFloats shares the caller's buffer")
	}
}

func TestFromFloats_LengthMismatch(t *testing.T) {
	if img := FromFloats(3, 3, []float64{1, 2}); !img.Empty() {
		t.Error("mismatched length should yield an empty frame")
	}
}

func TestFromGray16(t *testing.T) {
	src := image.NewGray16(image.Rect(0, 0, 3, 2))
	src.SetGray16(1, 0, color16(1234))
	src.SetGray16(2, 1, color16(65535))

	img := FromGray16(src)
	if img.W != 3 || img.H != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", img.W, img.H)
	}
	if img.At(1, 0) != 1234 {
		t.Errorf("At(1,0) = %v, want 1234", img.At(1, 0))
	}
	if img.At(2, 1) != 65535 {
		t.Errorf("At(2,1) = %v, want 65535", img.At(2, 1))
	}
	if img.ValidCount() != 2 {
		t.Errorf("ValidCount = %d, want 2", img.ValidCount())
	}
}

func TestColorFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Pix[0] = 200 // R of (0,0)

	c := ColorFromImage(src)
	if c.W != 2 || c.H != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", c.W, c.H)
	}
	if !c.hasContent() {
		t.Error("colour frame with a lit pixel reports no content")
	}

	blank := ColorFromImage(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	if blank.hasContent() {
		t.Error("all-zero colour frame reports content")
	}
}
