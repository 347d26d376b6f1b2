// Command gen-depth generates synthetic depth frames for testing the
// quality gate and demoing the assess tooling.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"path/filepath"

	"github.com/fathom-robotics/depthgate/internal/depthio"
	"github.com/fathom-robotics/depthgate/internal/synth"
)

func main() {
	outDir := flag.String("o", ".", "output directory")
	preset := flag.String("preset", synth.Clean, fmt.Sprintf("frame preset %v", synth.Presets))
	frames := flag.Int("n", 10, "number of frames")
	width := flag.Int("w", 640, "frame width")
	height := flag.Int("h", 480, "frame height")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	for i := 0; i < *frames; i++ {
		img, err := synth.Generate(*preset, *width, *height, rng)
		if err != nil {
			log.Fatal(err)
		}
		path := filepath.Join(*outDir, fmt.Sprintf("%s_%04d.png", *preset, i))
		if err := depthio.SaveDepth(path, img); err != nil {
			log.Fatalf("failed to write %s: %v", path, err)
		}
		if (i+1)%10 == 0 {
			log.Printf("%d/%d frames", i+1, *frames)
		}
	}
	log.Printf("✓ Created %d %s frames in %s", *frames, *preset, *outDir)
}
