// Package api exposes frame assessment over a plain JSON HTTP surface:
// upload a depth PNG, get a quality score and accept/reject decision,
// and browse the stored assessment history.
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/fathom-robotics/depthgate/internal/depth"
	"github.com/fathom-robotics/depthgate/internal/depthdb"
	"github.com/fathom-robotics/depthgate/internal/httputil"
	"github.com/fathom-robotics/depthgate/internal/monitoring"
	"github.com/fathom-robotics/depthgate/internal/report"
	"github.com/fathom-robotics/depthgate/internal/version"
)

// ANSI escape codes for request log colouring
const colorCyan = "\033[36m"
const colorReset = "\033[0m"
const colorYellow = "\033[33m"
const colorBoldGreen = "\033[1;32m"
const colorBoldRed = "\033[1;31m"

type Server struct {
	db       *depthdb.DB
	assessor *depth.Assessor
	tuning   *depth.Tuning
}

// NewServer wires the assessment endpoints to a store and a tuning. A
// nil tuning means library defaults throughout.
func NewServer(db *depthdb.DB, tuning *depth.Tuning) *Server {
	return &Server{
		db:       db,
		assessor: depth.NewAssessor(tuning),
		tuning:   tuning,
	}
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func statusCodeColor(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return colorBoldGreen + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 300 && statusCode < 400:
		return colorYellow + strconv.Itoa(statusCode) + colorReset
	default:
		return colorBoldRed + strconv.Itoa(statusCode) + colorReset
	}
}

// LoggingMiddleware logs method, path, status, and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{w, http.StatusOK}
		next.ServeHTTP(lrw, r)
		monitoring.Logf(
			"[%s] %s %s%s%s %vms",
			statusCodeColor(lrw.statusCode), r.Method,
			colorCyan, r.RequestURI, colorReset,
			float64(time.Since(start).Nanoseconds())/1e6,
		)
	})
}

func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/assess", s.assessFrame)
	mux.HandleFunc("/api/assessments", s.listAssessments)
	mux.HandleFunc("/api/summary", s.showSummary)
	mux.HandleFunc("/api/report", s.showReport)
	mux.HandleFunc("/healthz", s.healthz)
	return mux
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}

func (s *Server) listAssessments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil || v < 0 {
			httputil.BadRequest(w, "limit must be a non-negative integer")
			return
		}
		limit = v
	}

	assessments, err := s.db.Assessments(limit)
	if err != nil {
		httputil.InternalServerError(w, err.Error())
		return
	}
	if assessments == nil {
		assessments = []depthdb.Assessment{}
	}
	httputil.WriteJSON(w, http.StatusOK, assessments)
}

func (s *Server) showSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	summary, err := s.db.Summarize()
	if err != nil {
		httputil.InternalServerError(w, err.Error())
		return
	}
	httputil.WriteJSON(w, http.StatusOK, summary)
}

func (s *Server) showReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}

	assessments, err := s.db.Assessments(0)
	if err != nil {
		httputil.InternalServerError(w, err.Error())
		return
	}
	if len(assessments) == 0 {
		httputil.NotFound(w, "no assessments recorded yet")
		return
	}

	// Stored newest-first; the report reads better oldest-first.
	frames := make([]report.Frame, 0, len(assessments))
	for i := len(assessments) - 1; i >= 0; i-- {
		a := assessments[i]
		frames = append(frames, report.Frame{
			Label:     a.Source,
			Score:     a.Score,
			Breakdown: a.Breakdown,
			Accepted:  a.Accepted,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := report.Write(w, frames, s.tuning.Thresholds()); err != nil {
		monitoring.Logf("failed to render report: %v", err)
	}
}
