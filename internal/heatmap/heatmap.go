// Package heatmap renders diagnostic images for depth frames: the
// frame itself and its Sobel gradient-magnitude field, as PNG heatmaps.
// These are tuning aids for the edge-quality metric, not part of the
// scoring path.
package heatmap

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/fathom-robotics/depthgate/internal/depth"
)

// frameGrid adapts a depth frame to plotter.GridXYZ. Row 0 of the frame
// is drawn at the top, matching image orientation.
type frameGrid struct {
	img *depth.Image
}

func (g frameGrid) Dims() (int, int)   { return g.img.W, g.img.H }
func (g frameGrid) X(c int) float64    { return float64(c) }
func (g frameGrid) Y(r int) float64    { return float64(g.img.H - 1 - r) }
func (g frameGrid) Z(c, r int) float64 { return g.img.At(c, g.img.H-1-r) }

// SaveDepthHeatmap renders the raw depth field to a PNG at path.
func SaveDepthHeatmap(img *depth.Image, path string) error {
	return save(img, "depth (sensor units)", path)
}

// SaveGradientHeatmap renders the Sobel gradient-magnitude field to a
// PNG at path, with magnitudes zeroed at invalid pixels exactly as the
// edge metric sees them.
func SaveGradientHeatmap(img *depth.Image, path string) error {
	return save(depth.GradientField(img), "gradient magnitude", path)
}

func save(img *depth.Image, title, path string) error {
	if img.Empty() {
		return fmt.Errorf("cannot render heatmap of an empty frame")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	hm := plotter.NewHeatMap(frameGrid{img: img}, palette.Heat(12, 1))
	p.Add(hm)

	// Keep pixel aspect: scale the canvas to the frame shape with a
	// fixed long edge.
	const longEdge = 6 * vg.Inch
	w, h := longEdge, longEdge
	if img.W >= img.H {
		h = longEdge * vg.Length(float64(img.H)/float64(img.W))
	} else {
		w = longEdge * vg.Length(float64(img.W)/float64(img.H))
	}

	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("failed to save heatmap: %w", err)
	}
	return nil
}
