package synth

import (
	"math/rand"
	"testing"

	"github.com/fathom-robotics/depthgate/internal/depth"
)

func TestGenerate_UnknownPreset(t *testing.T) {
	if _, err := Generate("pristine", 10, 10, rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestGenerate_CleanPassesGate(t *testing.T) {
	img, err := Generate(Clean, 160, 120, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	ok, score, b := depth.IsAcceptable(img, depth.DefaultThresholds())
	if !ok {
		t.Errorf("clean preset rejected: score=%v breakdown=%+v", score, b)
	}
	if b.Coverage != 1.0 {
		t.Errorf("clean coverage = %v, want 1.0", b.Coverage)
	}
}

func TestGenerate_SparseFailsCoverage(t *testing.T) {
	img, err := Generate(Sparse, 160, 120, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	ok, _, b := depth.IsAcceptable(img, depth.DefaultThresholds())
	if ok {
		t.Errorf("sparse preset accepted with coverage %v", b.Coverage)
	}
	if b.Coverage > 0.3 {
		t.Errorf("sparse coverage = %v, want <= 0.3", b.Coverage)
	}
}

func TestGenerate_NoisyScoresBelowClean(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	clean, _ := Generate(Clean, 160, 120, rng)
	noisy, _ := Generate(Noisy, 160, 120, rng)

	_, cb := depth.Quality(clean)
	_, nb := depth.Quality(noisy)
	if nb.NoiseLevel >= cb.NoiseLevel {
		t.Errorf("noisy noise_level %v not below clean %v", nb.NoiseLevel, cb.NoiseLevel)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, _ := Generate(Mixed, 80, 60, rand.New(rand.NewSource(42)))
	b, _ := Generate(Mixed, 80, 60, rand.New(rand.NewSource(42)))
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("pixel %d differs across identical seeds", i)
		}
	}
}
