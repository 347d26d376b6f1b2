package depthio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/fathom-robotics/depthgate/internal/depth"
)

func TestSaveLoadDepth(t *testing.T) {
	img := depth.NewImage(8, 4)
	img.Set(0, 0, 1)
	img.Set(3, 2, 1500)
	img.Set(7, 3, 65535)

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := SaveDepth(path, img); err != nil {
		t.Fatalf("SaveDepth: %v", err)
	}

	got, err := LoadDepth(path)
	if err != nil {
		t.Fatalf("LoadDepth: %v", err)
	}
	if got.W != 8 || got.H != 4 {
		t.Fatalf("dimensions = %dx%d, want 8x4", got.W, got.H)
	}
	for _, c := range []struct {
		x, y int
		want float64
	}{{0, 0, 1}, {3, 2, 1500}, {7, 3, 65535}, {1, 1, 0}} {
		if v := got.At(c.x, c.y); v != c.want {
			t.Errorf("At(%d,%d) = %v, want %v", c.x, c.y, v, c.want)
		}
	}
}

func TestEncodeDepth_ClampsRange(t *testing.T) {
	img := depth.NewImage(2, 1)
	img.Set(0, 0, -50)
	img.Set(1, 0, 1e9)

	var buf bytes.Buffer
	if err := EncodeDepth(&buf, img); err != nil {
		t.Fatalf("EncodeDepth: %v", err)
	}
	got, err := DecodeDepth(&buf)
	if err != nil {
		t.Fatalf("DecodeDepth: %v", err)
	}
	if got.At(0, 0) != 0 {
		t.Errorf("negative sample = %v, want clamped to 0", got.At(0, 0))
	}
	if got.At(1, 0) != 65535 {
		t.Errorf("oversized sample = %v, want clamped to 65535", got.At(1, 0))
	}
}

func TestDecodeDepth_ConvertsNonGray16(t *testing.T) {
	// An 8-bit source still decodes, via conversion.
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	src.SetGray(2, 2, color.Gray{Y: 40})

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	got, err := DecodeDepth(&buf)
	if err != nil {
		t.Fatalf("DecodeDepth: %v", err)
	}
	if got.ValidCount() != 1 {
		t.Errorf("ValidCount = %d, want 1", got.ValidCount())
	}
}

func TestLoadColor(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 6, 5))
	src.Set(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	path := filepath.Join(t.TempDir(), "color.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	c, err := LoadColor(path)
	if err != nil {
		t.Fatalf("LoadColor: %v", err)
	}
	if c.W != 6 || c.H != 5 {
		t.Errorf("dimensions = %dx%d, want 6x5", c.W, c.H)
	}
}

func TestLoadDepth_MissingFile(t *testing.T) {
	if _, err := LoadDepth(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Error("expected error for missing file")
	}
}
