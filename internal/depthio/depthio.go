// Package depthio loads and saves depth and colour frames as image
// files. Depth frames use the conventional 16-bit grayscale PNG
// encoding with raw sensor units (typically millimetres); a zero sample
// is "no reading".
package depthio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	_ "image/jpeg" // colour frames are commonly JPEG

	"github.com/fathom-robotics/depthgate/internal/depth"
)

// LoadDepth reads a 16-bit grayscale PNG depth frame.
func LoadDepth(path string) (*depth.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open depth frame: %w", err)
	}
	defer f.Close()
	return DecodeDepth(f)
}

// DecodeDepth decodes a depth frame from a PNG stream. Images that
// decode to something other than 16-bit grayscale are converted, losing
// precision for 8-bit sources; genuine depth captures should always be
// Gray16.
func DecodeDepth(r io.Reader) (*depth.Image, error) {
	src, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode depth PNG: %w", err)
	}

	if g16, ok := src.(*image.Gray16); ok {
		return depth.FromGray16(g16), nil
	}

	b := src.Bounds()
	g16 := image.NewGray16(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g16.Set(x-b.Min.X, y-b.Min.Y, src.At(x, y))
		}
	}
	return depth.FromGray16(g16), nil
}

// LoadColor reads a colour frame (PNG or JPEG).
func LoadColor(path string) (*depth.ColorImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open color frame: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode color frame: %w", err)
	}
	return depth.ColorFromImage(src), nil
}

// SaveDepth writes a depth frame as a 16-bit grayscale PNG. Samples are
// truncated into the uint16 range; frames in millimetres fit comfortably
// out to 65 metres.
func SaveDepth(path string, img *depth.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create depth frame file: %w", err)
	}
	defer f.Close()

	if err := EncodeDepth(f, img); err != nil {
		return err
	}
	return f.Close()
}

// EncodeDepth writes a depth frame to a PNG stream.
func EncodeDepth(w io.Writer, img *depth.Image) error {
	g16 := image.NewGray16(image.Rect(0, 0, img.W, img.H))
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			v := img.At(x, y)
			switch {
			case v < 0:
				v = 0
			case v > 65535:
				v = 65535
			}
			g16.SetGray16(x, y, color.Gray16{Y: uint16(v)})
		}
	}
	if err := png.Encode(w, g16); err != nil {
		return fmt.Errorf("failed to encode depth PNG: %w", err)
	}
	return nil
}
