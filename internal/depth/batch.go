package depth

import (
	"runtime"
	"sync"
)

// BatchResult is one frame's assessment within a batch, tagged with the
// frame's position in the input slice.
type BatchResult struct {
	Index     int       `json:"index"`
	Score     float64   `json:"score"`
	Breakdown Breakdown `json:"breakdown"`
	Accepted  bool      `json:"accepted"`
}

// AssessBatch scores and gates a batch of frames in parallel. Results
// are returned in input order regardless of completion order; frames are
// otherwise independent, so no cross-frame coordination happens beyond
// the pool itself. workers <= 0 means one per available CPU.
func (a *Assessor) AssessBatch(frames []*Image, th Thresholds, workers int) []BatchResult {
	results := make([]BatchResult, len(frames))
	if len(frames) == 0 {
		return results
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(frames) {
		workers = len(frames)
	}

	idx := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				ok, score, b := a.IsAcceptable(frames[i], th)
				results[i] = BatchResult{Index: i, Score: score, Breakdown: b, Accepted: ok}
			}
		}()
	}

	for i := range frames {
		idx <- i
	}
	close(idx)
	wg.Wait()

	return results
}

// AssessBatch is the package-level batch assessor with default tuning.
func AssessBatch(frames []*Image, th Thresholds, workers int) []BatchResult {
	return defaultAssessor.AssessBatch(frames, th, workers)
}
