package api

import (
	"net/http"
	"strconv"

	"github.com/fathom-robotics/depthgate/internal/depth"
	"github.com/fathom-robotics/depthgate/internal/depthio"
	"github.com/fathom-robotics/depthgate/internal/httputil"
)

// maxFrameBytes caps uploaded frame size. A 4K uint16 frame is ~17MB
// raw; compressed PNGs come in well under this.
const maxFrameBytes = 32 << 20

// AssessResponse is the JSON body returned for an uploaded frame.
type AssessResponse struct {
	AssessmentID string          `json:"assessment_id,omitempty"`
	Source       string          `json:"source,omitempty"`
	Accepted     bool            `json:"accepted"`
	Score        float64         `json:"score"`
	Breakdown    depth.Breakdown `json:"breakdown"`
}

// assessFrame scores a depth PNG posted as the request body. Optional
// query params:
//   - source: identifier stored with the assessment
//   - min_quality, min_coverage, min_smoothness: per-request threshold
//     overrides (weights are never overridable per request)
//   - store=false: skip persisting the assessment
func (s *Server) assessFrame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}

	th, err := s.requestThresholds(r)
	if err != nil {
		httputil.BadRequest(w, err.Error())
		return
	}

	img, err := depthio.DecodeDepth(http.MaxBytesReader(w, r.Body, maxFrameBytes))
	if err != nil {
		httputil.BadRequest(w, "body must be a PNG depth frame: "+err.Error())
		return
	}

	ok, score, b := s.assessor.IsAcceptable(img, th)

	resp := AssessResponse{
		Source:    r.URL.Query().Get("source"),
		Accepted:  ok,
		Score:     score,
		Breakdown: b,
	}

	if r.URL.Query().Get("store") != "false" {
		id, err := s.db.RecordAssessment(resp.Source, score, b, ok)
		if err != nil {
			httputil.InternalServerError(w, err.Error())
			return
		}
		resp.AssessmentID = id
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}

// requestThresholds starts from the configured thresholds and applies
// any per-request overrides.
func (s *Server) requestThresholds(r *http.Request) (depth.Thresholds, error) {
	th := s.tuning.Thresholds()
	for param, field := range map[string]*float64{
		"min_quality":    &th.MinQuality,
		"min_coverage":   &th.MinCoverage,
		"min_smoothness": &th.MinSmoothness,
	} {
		raw := r.URL.Query().Get(param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 1 {
			return th, errBadThreshold(param, raw)
		}
		*field = v
	}
	return th, nil
}

type thresholdError struct{ param, raw string }

func (e thresholdError) Error() string {
	return e.param + " must be a number in [0, 1], got " + strconv.Quote(e.raw)
}

func errBadThreshold(param, raw string) error { return thresholdError{param: param, raw: raw} }
