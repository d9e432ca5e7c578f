package analysis

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/user/seo-analyzer-service/internal/entity"
)

var headingLevels = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// ExtractHeadings collects the trimmed text of every heading element,
// grouped by level in document order. Levels with no headings map to an
// empty slice. No deduplication.
func ExtractHeadings(p *Page) entity.Headings {
	headings := make(entity.Headings, len(headingLevels))
	for _, level := range headingLevels {
		texts := []string{}
		p.doc.Find(level).Each(func(_ int, s *goquery.Selection) {
			texts = append(texts, strings.TrimSpace(s.Text()))
		})
		headings[level] = texts
	}
	return headings
}
