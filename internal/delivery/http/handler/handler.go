package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/user/seo-analyzer-service/internal/delivery/http/request"
	"github.com/user/seo-analyzer-service/internal/delivery/http/response"
	"github.com/user/seo-analyzer-service/internal/repository"
	"github.com/user/seo-analyzer-service/internal/usecase"
)

type Handler struct {
	analyzer usecase.Analyzer
}

func NewHandler(analyzer usecase.Analyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

// HandleAnalyze runs a synchronous analysis of the submitted URL and
// returns the full report.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req request.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := url.ParseRequestURI(req.URL); err != nil {
		h.writeJSONError(w, "Invalid URL format", http.StatusBadRequest)
		return
	}

	report, err := h.analyzer.Analyze(r.Context(), req.URL, req.ForceRefresh)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrFetchTimeout):
			h.writeJSONError(w, "Failed to fetch website: timed out", http.StatusGatewayTimeout)
		case errors.Is(err, repository.ErrBadStatus), errors.Is(err, repository.ErrFetchFailed):
			h.writeJSONError(w, "Failed to fetch website", http.StatusBadGateway)
		default:
			slog.Error("Failed to analyze URL", "url", req.URL, "error", err)
			h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	resp := response.AnalyzeResponse{
		Status: "success",
		Report: report,
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// HandleGetReport returns the last persisted report for a URL.
func (h *Handler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		h.writeJSONError(w, "URL query parameter is required", http.StatusBadRequest)
		return
	}

	report, err := h.analyzer.GetReport(r.Context(), rawURL)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			h.writeJSONError(w, "No report found for the given URL", http.StatusNotFound)
			return
		}
		slog.Error("Failed to get report", "url", rawURL, "error", err)
		h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, report)
}

// HandleKeywordsCSV serves the keyword table of the last report as a CSV
// download.
func (h *Handler) HandleKeywordsCSV(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		h.writeJSONError(w, "URL query parameter is required", http.StatusBadRequest)
		return
	}

	data, filename, err := h.analyzer.KeywordsCSV(r.Context(), rawURL)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			h.writeJSONError(w, "No report found for the given URL", http.StatusNotFound)
			return
		}
		slog.Error("Failed to export keywords", "url", rawURL, "error", err)
		h.writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Error("Failed to write CSV response", "error", err)
	}
}

func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

func (h *Handler) writeJSONError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, response.ErrorResponse{Error: message})
}
