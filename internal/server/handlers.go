package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/nao1215/urlrisk/internal/classifier"
	"github.com/nao1215/urlrisk/internal/model"
	"github.com/nao1215/urlrisk/internal/pipeline"
	"github.com/nao1215/urlrisk/internal/report"
)

// ScoreRequest is the body of POST /v1/score. Exactly one of URL and URLs
// must be set.
type ScoreRequest struct {
	URL  *string  `json:"url,omitempty"`
	URLs []string `json:"urls,omitempty"`
}

// ReportRequest is the body of POST /v1/report.
type ReportRequest struct {
	URL string `json:"url"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`

	// Index is the position of the offending URL in a batch request.
	Index *int `json:"index,omitempty"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status    string                    `json:"status"`
	Artifacts []classifier.ArtifactInfo `json:"artifacts,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Artifacts: s.artifacts})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if !s.decode(w, r, &req) {
		return
	}

	switch {
	case req.URL != nil && req.URLs != nil:
		writeError(w, http.StatusBadRequest, "set either url or urls, not both", nil)
	case req.URL != nil:
		s.scoreOne(w, *req.URL)
	case req.URLs != nil:
		s.scoreMany(w, r, req.URLs)
	default:
		writeError(w, http.StatusUnprocessableEntity, model.WarnBlankCheck, nil)
	}
}

func (s *Server) scoreOne(w http.ResponseWriter, url string) {
	if model.IsBlank(url) {
		writeError(w, http.StatusUnprocessableEntity, model.WarnBlankCheck, nil)
		return
	}

	a, err := s.assessor.Assess(url)
	if err != nil {
		s.logger.Error("scoring failed", "url", url, "error", err)
		writeError(w, http.StatusInternalServerError, "scoring failed", nil)
		return
	}
	writeJSON(w, http.StatusOK, report.NewView(&a))
}

func (s *Server) scoreMany(w http.ResponseWriter, r *http.Request, urls []string) {
	if len(urls) == 0 {
		writeError(w, http.StatusUnprocessableEntity, model.WarnBlankCheck, nil)
		return
	}
	for i, url := range urls {
		if model.IsBlank(url) {
			writeError(w, http.StatusUnprocessableEntity, model.WarnBlankCheck, &i)
			return
		}
	}

	results, err := s.batch.ProcessBatch(r.Context(), urls)
	if err != nil {
		// The client went away.
		return
	}

	assessments, failed := pipeline.Assessments(results)
	if len(failed) > 0 {
		s.logger.Error("scoring failed", "url", failed[0].URL, "error", failed[0].Err)
		writeError(w, http.StatusInternalServerError, "scoring failed", &failed[0].Index)
		return
	}
	writeJSON(w, http.StatusOK, report.NewBatchView(assessments))
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest
	if !s.decode(w, r, &req) {
		return
	}
	if model.IsBlank(req.URL) {
		writeError(w, http.StatusUnprocessableEntity, model.WarnBlankReport, nil)
		return
	}

	ack := model.Acknowledge(req.URL)
	s.logger.Info("url reported", "url", req.URL)
	writeJSON(w, http.StatusOK, ack)
}

// decode reads a JSON body into v. It writes a 400 and returns false on
// failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large", nil)
			return false
		}
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err), nil)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck // client may have gone away
}

func writeError(w http.ResponseWriter, status int, msg string, index *int) {
	writeJSON(w, status, ErrorResponse{Error: msg, Index: index})
}
