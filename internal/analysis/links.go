package analysis

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/user/seo-analyzer-service/internal/entity"
	"github.com/user/seo-analyzer-service/pkg/utils"
)

// ClassifyLinks resolves every anchor href against the page URL and
// partitions the results into internal and external. A link is internal
// when the resolved host matches the page's host, or when it has no host
// at all (pure path or fragment references). Anchors without an href and
// hrefs that fail to parse are skipped. Repeated URLs are counted every
// time they occur.
func ClassifyLinks(p *Page, pageURL string) entity.LinkSet {
	links := entity.LinkSet{Internal: []string{}, External: []string{}}

	base, err := url.Parse(pageURL)
	if err != nil {
		return links
	}

	p.doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		resolved, err := utils.ResolveURL(base, href)
		if err != nil {
			return
		}
		if resolved.Host == base.Host || resolved.Host == "" {
			links.Internal = append(links.Internal, resolved.String())
		} else {
			links.External = append(links.External, resolved.String())
		}
	})

	return links
}
