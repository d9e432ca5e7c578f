package analysis

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/user/seo-analyzer-service/internal/entity"
)

// AuditImages counts every <img> element and how many carry a non-empty
// alt attribute. An empty alt counts as missing.
func AuditImages(p *Page) entity.ImageStats {
	var stats entity.ImageStats
	p.doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		stats.Total++
		if alt, ok := s.Attr("alt"); ok && alt != "" {
			stats.WithAlt++
		}
	})
	stats.WithoutAlt = stats.Total - stats.WithAlt
	return stats
}
