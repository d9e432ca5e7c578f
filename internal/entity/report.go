package entity

import "time"

// Priority ranks how urgent a recommendation is.
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

// MetaData holds the SEO-relevant tags extracted from the document head.
// Missing tags are represented by fixed sentinel strings, never by empty
// values, so consumers can compare lengths without nil checks.
type MetaData struct {
	Title             string `json:"title"`
	TitleLength       int    `json:"title_length"`
	Description       string `json:"description"`
	DescriptionLength int    `json:"description_length"`
	MetaKeywords      string `json:"meta_keywords"`
	OGTitle           string `json:"og_title"`
	OGDescription     string `json:"og_description"`
}

// Headings maps a heading level ("h1".."h6") to the trimmed text of every
// matching element in document order.
type Headings map[string][]string

// KeywordEntry is a single row of the keyword frequency table.
type KeywordEntry struct {
	Term      string `json:"term"`
	Frequency int    `json:"frequency"`
}

// LinkSet partitions every resolved anchor target into internal and
// external, relative to the analyzed page's host. Repeated URLs are kept.
type LinkSet struct {
	Internal []string `json:"internal"`
	External []string `json:"external"`
}

// ImageStats summarizes alt-text coverage. WithAlt + WithoutAlt == Total.
type ImageStats struct {
	Total      int `json:"total"`
	WithAlt    int `json:"with_alt"`
	WithoutAlt int `json:"without_alt"`
}

// SeoCheck is one entry of the fixed scoring checklist.
type SeoCheck struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
}

// Recommendation is a prioritized action item derived from the analysis.
type Recommendation struct {
	Priority       Priority `json:"priority"`
	Category       string   `json:"category"`
	Issue          string   `json:"issue"`
	Recommendation string   `json:"recommendation"`
}

// Report is the full result of analyzing a single page. It mirrors the
// `reports` PostgreSQL table schema (the structured fields are stored as
// JSONB).
type Report struct {
	ID              int64            `json:"-"`
	URL             string           `json:"url"`
	Domain          string           `json:"domain"`
	HTTPStatusCode  int              `json:"http_status_code"`
	LoadTimeSeconds float64          `json:"load_time_seconds"`
	WordCount       int              `json:"word_count"`
	Meta            MetaData         `json:"meta"`
	Headings        Headings         `json:"headings"`
	Keywords        []KeywordEntry   `json:"keywords"`
	Links           LinkSet          `json:"links"`
	Images          ImageStats       `json:"images"`
	Checks          []SeoCheck       `json:"checks"`
	Score           float64          `json:"score"`
	Recommendations []Recommendation `json:"recommendations"`
	AnalyzedAt      time.Time        `json:"analyzed_at"`
}
