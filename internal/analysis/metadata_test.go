package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, html string) *Page {
	t.Helper()
	page, err := Parse([]byte(html))
	require.NoError(t, err)
	return page
}

func TestExtractMeta(t *testing.T) {
	t.Run("all tags present", func(t *testing.T) {
		page := mustParse(t, `<html><head>
			<title> My Page Title </title>
			<meta name="description" content="A description of the page">
			<meta name="keywords" content="seo, analysis">
			<meta property="og:title" content="OG Page Title">
			<meta property="og:description" content="OG description">
		</head><body></body></html>`)

		meta := ExtractMeta(page)
		assert.Equal(t, "My Page Title", meta.Title)
		assert.Equal(t, 13, meta.TitleLength)
		assert.Equal(t, "A description of the page", meta.Description)
		assert.Equal(t, 25, meta.DescriptionLength)
		assert.Equal(t, "seo, analysis", meta.MetaKeywords)
		assert.Equal(t, "OG Page Title", meta.OGTitle)
		assert.Equal(t, "OG description", meta.OGDescription)
	})

	t.Run("missing tags degrade to sentinels", func(t *testing.T) {
		page := mustParse(t, `<html><head></head><body><p>hello</p></body></html>`)

		meta := ExtractMeta(page)
		assert.Equal(t, NoTitleSentinel, meta.Title)
		assert.Equal(t, len(NoTitleSentinel), meta.TitleLength)
		assert.Equal(t, NoDescriptionSentinel, meta.Description)
		assert.Equal(t, len(NoDescriptionSentinel), meta.DescriptionLength)
		assert.Equal(t, NoKeywordsSentinel, meta.MetaKeywords)
		assert.Equal(t, NotSetSentinel, meta.OGTitle)
		assert.Equal(t, NotSetSentinel, meta.OGDescription)
	})

	t.Run("sentinel length counts against the optimal range", func(t *testing.T) {
		// The length check runs against the resolved string, sentinel
		// included. "No description found" is 20 characters, outside
		// [120,160].
		page := mustParse(t, `<html><head><title>Short</title></head><body></body></html>`)

		meta := ExtractMeta(page)
		assert.Equal(t, 5, meta.TitleLength)
		assert.Equal(t, 20, meta.DescriptionLength)
	})

	t.Run("empty title element counts as present", func(t *testing.T) {
		page := mustParse(t, `<html><head><title></title></head></html>`)

		meta := ExtractMeta(page)
		assert.Equal(t, "", meta.Title)
		assert.Equal(t, 0, meta.TitleLength)
	})

	t.Run("empty content attribute falls back to sentinel", func(t *testing.T) {
		page := mustParse(t, `<html><head>
			<meta name="description" content="">
			<meta property="og:title" content="">
		</head></html>`)

		meta := ExtractMeta(page)
		assert.Equal(t, NoDescriptionSentinel, meta.Description)
		assert.Equal(t, NotSetSentinel, meta.OGTitle)
	})

	t.Run("first title wins", func(t *testing.T) {
		page := mustParse(t, `<html><head><title>First</title><title>Second</title></head></html>`)

		meta := ExtractMeta(page)
		assert.Equal(t, "First", meta.Title)
	})

	t.Run("title length is counted in runes", func(t *testing.T) {
		page := mustParse(t, `<html><head><title>héllo</title></head></html>`)

		meta := ExtractMeta(page)
		assert.Equal(t, 5, meta.TitleLength)
	})
}
