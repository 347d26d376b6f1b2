// Package testutil provides shared test utilities and fixtures.
package testutil

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fathom-robotics/depthgate/internal/depth"
	"github.com/fathom-robotics/depthgate/internal/depthio"
)

// AssertStatusCode checks that the response status code matches expected.
func AssertStatusCode(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("status code = %d, want %d", got, want)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// UniformFrame returns a w x h frame where every pixel holds v.
func UniformFrame(w, h int, v float64) *depth.Image {
	img := depth.NewImage(w, h)
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// FramePNG encodes a frame as 16-bit PNG bytes for upload fixtures.
func FramePNG(t *testing.T, img *depth.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	AssertNoError(t, depthio.EncodeDepth(&buf, img))
	return buf.Bytes()
}

// NewTestRequest creates a test HTTP request.
func NewTestRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

// NewTestRecorder creates a test response recorder.
func NewTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
