package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/seo-analyzer-service/internal/entity"
	"github.com/user/seo-analyzer-service/internal/repository"
)

type stubAnalyzer struct {
	report    *entity.Report
	err       error
	csv       []byte
	filename  string
	lastForce bool
}

func (s *stubAnalyzer) Analyze(ctx context.Context, url string, forceRefresh bool) (*entity.Report, error) {
	s.lastForce = forceRefresh
	return s.report, s.err
}

func (s *stubAnalyzer) GetReport(ctx context.Context, url string) (*entity.Report, error) {
	return s.report, s.err
}

func (s *stubAnalyzer) KeywordsCSV(ctx context.Context, url string) ([]byte, string, error) {
	return s.csv, s.filename, s.err
}

func TestHandleAnalyzeSuccess(t *testing.T) {
	stub := &stubAnalyzer{report: &entity.Report{URL: "https://example.com", Score: 50}}
	h := NewHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"url":"https://example.com","force_refresh":true}`))
	rec := httptest.NewRecorder()
	h.HandleAnalyze(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, stub.lastForce)

	var body struct {
		Status string         `json:"status"`
		Report *entity.Report `json:"report"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "success", body.Status)
	assert.InDelta(t, 50.0, body.Report.Score, 1e-9)
}

func TestHandleAnalyzeInvalidBody(t *testing.T) {
	h := NewHandler(&stubAnalyzer{})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`not json`))
	rec := httptest.NewRecorder()
	h.HandleAnalyze(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyzeInvalidURL(t *testing.T) {
	h := NewHandler(&stubAnalyzer{})

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"url":"not a url"}`))
	rec := httptest.NewRecorder()
	h.HandleAnalyze(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyzeFetchFailures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"bad status", repository.ErrBadStatus, http.StatusBadGateway},
		{"transport", repository.ErrFetchFailed, http.StatusBadGateway},
		{"timeout", repository.ErrFetchTimeout, http.StatusGatewayTimeout},
		{"unexpected", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubAnalyzer{err: tt.err})

			req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"url":"https://example.com"}`))
			rec := httptest.NewRecorder()
			h.HandleAnalyze(rec, req)

			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestHandleGetReportNotFound(t *testing.T) {
	h := NewHandler(&stubAnalyzer{err: repository.ErrReportNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/report?url=https://example.com", nil)
	rec := httptest.NewRecorder()
	h.HandleGetReport(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetReportMissingParam(t *testing.T) {
	h := NewHandler(&stubAnalyzer{})

	req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
	rec := httptest.NewRecorder()
	h.HandleGetReport(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleKeywordsCSV(t *testing.T) {
	h := NewHandler(&stubAnalyzer{
		csv:      []byte("Keyword,Frequency\ncoffee,3\n"),
		filename: "EXAMPLE_keywords.csv",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/keywords.csv?url=https://example.com", nil)
	rec := httptest.NewRecorder()
	h.HandleKeywordsCSV(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "EXAMPLE_keywords.csv")
	assert.Equal(t, "Keyword,Frequency\ncoffee,3\n", rec.Body.String())
}

func TestHandleHealthCheck(t *testing.T) {
	h := NewHandler(&stubAnalyzer{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.HandleHealthCheck(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
