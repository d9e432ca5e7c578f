package analysis

import (
	"net/url"
	"strings"
	"time"

	"github.com/user/seo-analyzer-service/internal/entity"
)

// DomainName derives a short display name from a URL:
// "https://www.example.com/x" becomes "EXAMPLE". Falls back to the path
// when the URL has no host.
func DomainName(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	domain := parsed.Host
	if domain == "" {
		domain = parsed.Path
	}
	domain = strings.TrimPrefix(domain, "www.")
	return strings.ToUpper(strings.Split(domain, ".")[0])
}

// Run executes the full analysis pipeline over a fetched document: parse,
// extract, score, recommend. It is a pure function of its inputs apart
// from the AnalyzedAt timestamp; running it twice on the same input yields
// the same report.
func Run(body []byte, pageURL string, statusCode int, loadTimeSeconds float64, topKeywords int) (*entity.Report, error) {
	page, err := Parse(body)
	if err != nil {
		return nil, err
	}

	if topKeywords <= 0 {
		topKeywords = DefaultTopKeywords
	}

	text := page.Text()
	meta := ExtractMeta(page)
	headings := ExtractHeadings(page)
	images := AuditImages(page)
	checks := Checklist(meta, images, pageURL)

	return &entity.Report{
		URL:             pageURL,
		Domain:          DomainName(pageURL),
		HTTPStatusCode:  statusCode,
		LoadTimeSeconds: loadTimeSeconds,
		WordCount:       len(strings.Fields(text)),
		Meta:            meta,
		Headings:        headings,
		Keywords:        ExtractKeywords(text, topKeywords),
		Links:           ClassifyLinks(page, pageURL),
		Images:          images,
		Checks:          checks,
		Score:           Score(checks),
		Recommendations: Recommend(meta, headings, images, pageURL, loadTimeSeconds),
		AnalyzedAt:      time.Now().UTC(),
	}, nil
}
