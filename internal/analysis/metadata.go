package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/user/seo-analyzer-service/internal/entity"
)

// Sentinel values reported when a tag is absent. Length checks run against
// the resolved string either way, sentinel included.
const (
	NoTitleSentinel       = "No title found"
	NoDescriptionSentinel = "No description found"
	NoKeywordsSentinel    = "No keywords found"
	NotSetSentinel        = "Not set"
)

// ExtractMeta reads the title, meta description/keywords and Open Graph
// tags from the page. A present but empty <title> element still counts as
// present; meta tags additionally require a non-empty content attribute.
func ExtractMeta(p *Page) entity.MetaData {
	meta := entity.MetaData{
		Title:         NoTitleSentinel,
		Description:   NoDescriptionSentinel,
		MetaKeywords:  NoKeywordsSentinel,
		OGTitle:       NotSetSentinel,
		OGDescription: NotSetSentinel,
	}

	if title := p.doc.Find("title").First(); title.Length() > 0 {
		meta.Title = strings.TrimSpace(title.Text())
	}

	if content, ok := p.doc.Find(`meta[name="description"]`).First().Attr("content"); ok && content != "" {
		meta.Description = content
	}
	if content, ok := p.doc.Find(`meta[name="keywords"]`).First().Attr("content"); ok && content != "" {
		meta.MetaKeywords = content
	}
	if content, ok := p.doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok && content != "" {
		meta.OGTitle = content
	}
	if content, ok := p.doc.Find(`meta[property="og:description"]`).First().Attr("content"); ok && content != "" {
		meta.OGDescription = content
	}

	meta.TitleLength = utf8.RuneCountInString(meta.Title)
	meta.DescriptionLength = utf8.RuneCountInString(meta.Description)

	return meta
}
