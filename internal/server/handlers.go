package server

import (
	"encoding/json"
	"net/http"

	"github.com/wjlenhart/minLPsolver/pkg/buildinfo"
	"github.com/wjlenhart/minLPsolver/pkg/check"
	"github.com/wjlenhart/minLPsolver/pkg/errors"
	"github.com/wjlenhart/minLPsolver/pkg/lp"
	"github.com/wjlenhart/minLPsolver/pkg/pipeline"
	"github.com/wjlenhart/minLPsolver/pkg/solve"
)

// errorEnvelope is the JSON error response shape.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// writeJSON writes v as a JSON response with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

// writeError maps an error to an HTTP status and the error envelope.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)

	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidPermutation,
		errors.ErrCodeIndexOutOfRange,
		errors.ErrCodeMalformedInput,
		errors.ErrCodeInvalidObjective:
		status = http.StatusBadRequest
	case errors.ErrCodeUnsupported:
		status = http.StatusNotImplemented
	}
	if code == "" {
		code = errors.ErrCodeInternal
	}

	s.writeJSON(w, status, errorEnvelope{Error: errorBody{
		Code:      string(code),
		Message:   errors.UserMessage(err),
		RequestID: requestIDFromContext(r.Context()),
	}})
}

// decode reads the request body into v, rejecting unknown top-level shapes.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeMalformedInput, err, "decode request body")
	}
	return nil
}

// handleHealth reports liveness and the build version.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// encodeResponse is the encode endpoint's response shape.
type encodeResponse struct {
	Document     *lp.Document `json:"document"`
	DocumentHash string       `json:"document_hash"`
	Cached       bool         `json:"cached"`
}

// handleEncode translates a permutation pair into an LP document.
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := decode(r, &opts); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.SkipSolve = true

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, encodeResponse{
		Document:     result.Document,
		DocumentHash: result.DocumentHash,
		Cached:       result.CacheInfo.EncodeHit,
	})
}

// solveRequest is the solve endpoint's request shape.
type solveRequest struct {
	Document *lp.Document `json:"document"`
	Refresh  bool         `json:"refresh,omitempty"`
}

// handleSolve minimizes a posted LP document.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Document == nil {
		s.writeError(w, r, errors.New(errors.ErrCodeMalformedInput, "request carries no document"))
		return
	}

	result, err := s.runner.Solve(r.Context(), req.Document, pipeline.Options{Refresh: req.Refresh})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

// checkRequest is the check endpoint's request shape.
type checkRequest struct {
	Document       *lp.Document       `json:"document"`
	VariableValues map[string]float64 `json:"variable_values"`
	Refresh        bool               `json:"refresh,omitempty"`
}

// handleCheck verifies an assignment against a posted document.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Document == nil {
		s.writeError(w, r, errors.New(errors.ErrCodeMalformedInput, "request carries no document"))
		return
	}
	if req.VariableValues == nil {
		s.writeError(w, r, errors.New(errors.ErrCodeMalformedInput, "request carries no variable_values"))
		return
	}

	report, err := s.runner.Check(r.Context(), req.Document, req.VariableValues, pipeline.Options{Refresh: req.Refresh})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

// runResponse is the run endpoint's response shape.
type runResponse struct {
	Document     *lp.Document       `json:"document"`
	DocumentHash string             `json:"document_hash"`
	Solution     *solve.Result      `json:"solution,omitempty"`
	Report       *check.Report      `json:"report,omitempty"`
	CacheInfo    pipeline.CacheInfo `json:"cache_info"`
}

// handleRun executes the full pipeline.
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := decode(r, &opts); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, runResponse{
		Document:     result.Document,
		DocumentHash: result.DocumentHash,
		Solution:     result.Solution,
		Report:       result.Report,
		CacheInfo:    result.CacheInfo,
	})
}
