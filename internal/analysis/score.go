package analysis

import (
	"strings"

	"github.com/user/seo-analyzer-service/internal/entity"
)

// Checklist evaluates the fixed six-point SEO checklist. The SSL check is
// a string prefix test on the original input URL, not certificate
// validation. With zero images the alt-coverage ratio is undefined, and
// the check is treated as not passed.
func Checklist(meta entity.MetaData, images entity.ImageStats, pageURL string) []entity.SeoCheck {
	altCovered := false
	if images.Total > 0 {
		altCovered = float64(images.WithAlt) > float64(images.Total)*0.7
	}

	return []entity.SeoCheck{
		{Name: "Title tag present", Passed: meta.Title != NoTitleSentinel},
		{Name: "Title length optimal", Passed: meta.TitleLength >= 30 && meta.TitleLength <= 60},
		{Name: "Meta description present", Passed: meta.Description != NoDescriptionSentinel},
		{Name: "Description length optimal", Passed: meta.DescriptionLength >= 120 && meta.DescriptionLength <= 160},
		{Name: "SSL enabled", Passed: strings.HasPrefix(pageURL, "https")},
		{Name: "Images have alt tags", Passed: altCovered},
	}
}

// Score converts the checklist into a 0-100 percentage, one point per
// passed check.
func Score(checks []entity.SeoCheck) float64 {
	passed := 0
	for _, check := range checks {
		if check.Passed {
			passed++
		}
	}
	return float64(passed) / float64(len(checks)) * 100
}
