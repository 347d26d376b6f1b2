package depth

import "math"

// Discrete differentiation kernels for the edge and noise metrics.
//
// Border handling is reflect-101 (gfedcb|abcdefgh|gfedcba), the default
// used by mainstream image libraries, so scores are reproducible against
// reference implementations of the same metrics.

// sobelX is the classic 3x3 horizontal first-derivative kernel.
// sobelY is its transpose.
var sobelX = [3][3]float64{
	{-1, 0, 1},
	{-2, 0, 2},
	{-1, 0, 1},
}

var sobelY = [3][3]float64{
	{-1, -2, -1},
	{0, 0, 0},
	{1, 2, 1},
}

// reflect101 maps an out-of-range coordinate into [0, n) by mirroring
// about the edge sample without repeating it.
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = 2*n - 2 - i
		}
	}
	return i
}

// gradientMagnitude computes sqrt(gx^2 + gy^2) of the 3x3 Sobel response
// at every pixel. Validity masking is the caller's concern.
func gradientMagnitude(img *Image) []float64 {
	mag := make([]float64, len(img.Pix))
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				sy := reflect101(y+ky, img.H)
				for kx := -1; kx <= 1; kx++ {
					sx := reflect101(x+kx, img.W)
					v := img.Pix[sy*img.W+sx]
					gx += v * sobelX[ky+1][kx+1]
					gy += v * sobelY[ky+1][kx+1]
				}
			}
			mag[y*img.W+x] = math.Hypot(gx, gy)
		}
	}
	return mag
}

// GradientField returns the Sobel gradient-magnitude field of a frame
// with magnitudes zeroed at invalid pixels, exactly as the edge metric
// sees it. Exposed for diagnostic rendering.
func GradientField(img *Image) *Image {
	if img.Empty() {
		return &Image{}
	}
	mag := gradientMagnitude(img)
	for i, v := range img.Pix {
		if v <= 0 {
			mag[i] = 0
		}
	}
	return &Image{W: img.W, H: img.H, Pix: mag}
}

// binomial returns the length-n row of Pascal's triangle, the standard
// smoothing aperture for derivative kernels.
func binomial(n int) []float64 {
	k := make([]float64, n)
	k[0] = 1
	for i := 1; i < n; i++ {
		for j := i; j > 0; j-- {
			k[j] += k[j-1]
		}
	}
	return k
}

// conv1 convolves two 1-D kernels (full output).
func conv1(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for i, av := range a {
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}
	return out
}

// laplacianKernel builds the n x n second-derivative aperture: the
// separable smoothed second difference in x plus the same in y. For
// n = 3 this reduces to the familiar [1 -2 1]-based kernel; n must be
// odd and >= 3.
func laplacianKernel(n int) [][]float64 {
	d2 := []float64{1, -2, 1}
	if n > 3 {
		d2 = conv1(d2, binomial(n-2))
	}
	smooth := binomial(n)

	k := make([][]float64, n)
	for y := 0; y < n; y++ {
		k[y] = make([]float64, n)
		for x := 0; x < n; x++ {
			k[y][x] = smooth[y]*d2[x] + d2[y]*smooth[x]
		}
	}
	return k
}

// laplacianResponse convolves the frame with the n x n second-derivative
// kernel. High variance of this response over valid pixels indicates
// speckle noise.
func laplacianResponse(img *Image, n int) []float64 {
	k := laplacianKernel(n)
	half := n / 2
	out := make([]float64, len(img.Pix))
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			var sum float64
			for ky := -half; ky <= half; ky++ {
				sy := reflect101(y+ky, img.H)
				for kx := -half; kx <= half; kx++ {
					sx := reflect101(x+kx, img.W)
					sum += img.Pix[sy*img.W+sx] * k[ky+half][kx+half]
				}
			}
			out[y*img.W+x] = sum
		}
	}
	return out
}
