package request

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	URL          string `json:"url"`
	ForceRefresh bool   `json:"force_refresh"`
}
