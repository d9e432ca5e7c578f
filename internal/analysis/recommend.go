package analysis

import (
	"fmt"
	"strings"

	"github.com/user/seo-analyzer-service/internal/entity"
)

// Recommend derives prioritized action items from the extracted facts.
// Conditions are evaluated independently in a fixed order, and the output
// keeps that order; callers may group or filter by priority for display.
// An empty result means every check came out clean.
func Recommend(meta entity.MetaData, headings entity.Headings, images entity.ImageStats, pageURL string, loadTimeSeconds float64) []entity.Recommendation {
	recs := []entity.Recommendation{}

	if meta.TitleLength < 30 || meta.TitleLength > 60 {
		recs = append(recs, entity.Recommendation{
			Priority:       entity.PriorityHigh,
			Category:       "SEO",
			Issue:          "Title Tag Length",
			Recommendation: "Optimize title tag length to 30-60 characters for better search visibility",
		})
	}

	if meta.DescriptionLength < 120 || meta.DescriptionLength > 160 {
		recs = append(recs, entity.Recommendation{
			Priority:       entity.PriorityHigh,
			Category:       "SEO",
			Issue:          "Meta Description Length",
			Recommendation: "Optimize meta description to 120-160 characters",
		})
	}

	if len(headings["h1"]) == 0 {
		recs = append(recs, entity.Recommendation{
			Priority:       entity.PriorityCritical,
			Category:       "Content",
			Issue:          "Missing H1 Tags",
			Recommendation: "Add H1 tags to your pages - crucial for SEO",
		})
	}

	if images.WithoutAlt > 0 {
		recs = append(recs, entity.Recommendation{
			Priority:       entity.PriorityMedium,
			Category:       "Accessibility",
			Issue:          fmt.Sprintf("%d Images Without Alt Text", images.WithoutAlt),
			Recommendation: "Add descriptive alt text to all images for better SEO and accessibility",
		})
	}

	if loadTimeSeconds > 3 {
		recs = append(recs, entity.Recommendation{
			Priority:       entity.PriorityHigh,
			Category:       "Performance",
			Issue:          "Slow Page Load Time",
			Recommendation: "Optimize page load time to under 3 seconds (consider image compression, caching, CDN)",
		})
	}

	if !strings.HasPrefix(pageURL, "https") {
		recs = append(recs, entity.Recommendation{
			Priority:       entity.PriorityCritical,
			Category:       "Security",
			Issue:          "No SSL Certificate",
			Recommendation: "Implement SSL certificate (HTTPS) immediately for security and SEO",
		})
	}

	return recs
}
