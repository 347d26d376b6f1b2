// Command assess scores a directory of depth PNGs against the quality
// gate, records the results, and optionally emits an HTML report and
// per-frame gradient heatmaps.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fathom-robotics/depthgate/internal/depth"
	"github.com/fathom-robotics/depthgate/internal/depthdb"
	"github.com/fathom-robotics/depthgate/internal/depthio"
	"github.com/fathom-robotics/depthgate/internal/heatmap"
	"github.com/fathom-robotics/depthgate/internal/report"
)

func main() {
	dir := flag.String("dir", ".", "directory of depth PNG frames")
	dbFile := flag.String("db", "", "optional assessment database to record into")
	reportFile := flag.String("report", "", "optional HTML report output path")
	heatmapDir := flag.String("heatmaps", "", "optional directory for gradient heatmap PNGs")
	tuningFile := flag.String("tuning", "", "optional tuning JSON file")
	workers := flag.Int("workers", 0, "parallel workers (0 = one per CPU)")
	flag.Parse()

	var tuning *depth.Tuning
	if *tuningFile != "" {
		var err error
		tuning, err = depth.LoadTuning(*tuningFile)
		if err != nil {
			log.Fatalf("failed to load tuning: %v", err)
		}
	}

	paths, err := frameFiles(*dir)
	if err != nil {
		log.Fatalf("failed to list frames: %v", err)
	}
	if len(paths) == 0 {
		log.Fatalf("no PNG frames found in %s", *dir)
	}

	frames := make([]*depth.Image, len(paths))
	for i, p := range paths {
		img, err := depthio.LoadDepth(p)
		if err != nil {
			log.Fatalf("failed to load %s: %v", p, err)
		}
		frames[i] = img
	}

	assessor := depth.NewAssessor(tuning)
	th := tuning.Thresholds()
	results := assessor.AssessBatch(frames, th, *workers)

	accepted := 0
	reportFrames := make([]report.Frame, len(results))
	for i, r := range results {
		name := filepath.Base(paths[i])
		reportFrames[i] = report.Frame{
			Label:     name,
			Score:     r.Score,
			Breakdown: r.Breakdown,
			Accepted:  r.Accepted,
		}
		verdict := "REJECT"
		if r.Accepted {
			verdict = "accept"
			accepted++
		}
		log.Printf("%s %s score=%.3f coverage=%.3f smoothness=%.3f edge=%.3f noise=%.3f",
			verdict, name, r.Score,
			r.Breakdown.Coverage, r.Breakdown.Smoothness,
			r.Breakdown.EdgeQuality, r.Breakdown.NoiseLevel)
	}
	log.Printf("accepted %d/%d frames", accepted, len(results))

	if *dbFile != "" {
		db, err := depthdb.NewDB(*dbFile)
		if err != nil {
			log.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()
		for i, r := range results {
			if _, err := db.RecordAssessment(paths[i], r.Score, r.Breakdown, r.Accepted); err != nil {
				log.Fatalf("failed to record %s: %v", paths[i], err)
			}
		}
	}

	if *reportFile != "" {
		f, err := os.Create(*reportFile)
		if err != nil {
			log.Fatalf("failed to create report: %v", err)
		}
		if err := report.Write(f, reportFrames, th); err != nil {
			log.Fatalf("failed to write report: %v", err)
		}
		f.Close()
		log.Printf("report written to %s", *reportFile)
	}

	if *heatmapDir != "" {
		if err := os.MkdirAll(*heatmapDir, 0755); err != nil {
			log.Fatalf("failed to create heatmap dir: %v", err)
		}
		for i, img := range frames {
			out := filepath.Join(*heatmapDir, strings.TrimSuffix(filepath.Base(paths[i]), ".png")+"_gradient.png")
			if err := heatmap.SaveGradientHeatmap(img, out); err != nil {
				log.Printf("skipping heatmap for %s: %v", paths[i], err)
			}
		}
		log.Printf("heatmaps written to %s", *heatmapDir)
	}
}

// frameFiles lists the PNG files directly under dir, sorted by name so
// numbered captures assess in sequence.
func frameFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".png") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
