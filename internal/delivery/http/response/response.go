package response

import "github.com/user/seo-analyzer-service/internal/entity"

// AnalyzeResponse wraps a completed analysis report.
type AnalyzeResponse struct {
	Status string         `json:"status"`
	Report *entity.Report `json:"report"`
}

// ErrorResponse is the JSON shape returned on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
