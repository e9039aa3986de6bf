package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/wjlenhart/minLPsolver/pkg/check"
	"github.com/wjlenhart/minLPsolver/pkg/lp"
	"github.com/wjlenhart/minLPsolver/pkg/pipeline"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(nil, nil, logger)
	t.Cleanup(func() { _ = runner.Close() })
	return New(runner, logger)
}

func postJSON(t *testing.T, srv *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	srv := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing request ID header")
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestEncodeEndpoint(t *testing.T) {
	srv := testServer(t)
	rec := postJSON(t, srv, "/api/v1/encode", pipeline.Options{
		P1: []int{1, 2}, P2: []int{2, 1}, Objective: "x_1 + y_1",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var resp encodeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Document == nil || resp.Document.NumVariables() != 4 {
		t.Fatalf("document = %+v", resp.Document)
	}
	if resp.DocumentHash == "" {
		t.Error("missing document hash")
	}
}

func TestEncodeEndpointRejectsBadInput(t *testing.T) {
	srv := testServer(t)
	rec := postJSON(t, srv, "/api/v1/encode", pipeline.Options{
		P1: []int{1, 1}, P2: []int{1, 2},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if envelope.Error.Code != "INVALID_PERMUTATION" {
		t.Errorf("error code = %q", envelope.Error.Code)
	}
	if envelope.Error.RequestID == "" {
		t.Error("error envelope missing request ID")
	}
}

func TestCheckEndpoint(t *testing.T) {
	doc := &lp.Document{
		Objective:     []float64{1, 1},
		Inequalities:  [][]float64{{1, -1}},
		InequalityRHS: []float64{-1},
		Equalities:    [][]float64{},
		EqualityRHS:   []float64{},
		Bounds:        []lp.Bound{lp.NonNegative(), lp.NonNegative()},
		VariableNames: []string{"x_1", "x_2"},
	}

	srv := testServer(t)
	rec := postJSON(t, srv, "/api/v1/check", checkRequest{
		Document:       doc,
		VariableValues: map[string]float64{"x_1": 1, "x_2": 3},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	var report check.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if !report.AllSatisfied {
		t.Errorf("report = %+v", report)
	}
}

func TestCheckEndpointMissingValues(t *testing.T) {
	srv := testServer(t)
	rec := postJSON(t, srv, "/api/v1/check", checkRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSolveEndpointMissingDocument(t *testing.T) {
	srv := testServer(t)
	rec := postJSON(t, srv, "/api/v1/solve", solveRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRequestIDEcho(t *testing.T) {
	srv := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("request ID = %q, want abc-123", got)
	}
}
