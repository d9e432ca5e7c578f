package analysis

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// Page is a parsed, read-only view of a fetched document. Extractors never
// mutate it, so a single Page may be shared across all of them.
type Page struct {
	doc  *goquery.Document
	text string
}

// Parse builds a Page from raw HTML. Parsing is best-effort: broken or
// truncated markup still yields a usable tree, and absent tags degrade to
// sentinel values downstream instead of failing the analysis.
func Parse(body []byte) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return &Page{doc: doc, text: doc.Text()}, nil
}

// Text returns the full text content of the document, including text inside
// script and style elements.
func (p *Page) Text() string {
	return p.text
}
