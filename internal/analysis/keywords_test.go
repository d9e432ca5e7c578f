package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/user/seo-analyzer-service/internal/entity"
)

func TestExtractKeywords(t *testing.T) {
	t.Run("stop words and short tokens removed", func(t *testing.T) {
		// "the" is a stop word, "fox" has only 3 characters.
		keywords := ExtractKeywords("The quick brown fox jumps", 20)

		assert.Equal(t, []entity.KeywordEntry{
			{Term: "quick", Frequency: 1},
			{Term: "brown", Frequency: 1},
			{Term: "jumps", Frequency: 1},
		}, keywords)
	})

	t.Run("digits and punctuation stripped before tokenizing", func(t *testing.T) {
		// "web3.0" collapses to "web", which is then dropped for length.
		keywords := ExtractKeywords("web3.0 framework, framework! don't-panic", 20)

		assert.Equal(t, []entity.KeywordEntry{
			{Term: "framework", Frequency: 2},
			{Term: "dontpanic", Frequency: 1},
		}, keywords)
	})

	t.Run("ordered by frequency with first-encounter tie break", func(t *testing.T) {
		keywords := ExtractKeywords("zebra apple zebra mango apple zebra cherry", 20)

		assert.Equal(t, []entity.KeywordEntry{
			{Term: "zebra", Frequency: 3},
			{Term: "apple", Frequency: 2},
			{Term: "mango", Frequency: 1},
			{Term: "cherry", Frequency: 1},
		}, keywords)
	})

	t.Run("truncated to top n", func(t *testing.T) {
		keywords := ExtractKeywords("alpha bravo charlie delta echo", 3)

		assert.Len(t, keywords, 3)
		assert.Equal(t, "alpha", keywords[0].Term)
	})

	t.Run("frequencies are non-increasing", func(t *testing.T) {
		text := strings.Repeat("coffee ", 5) + strings.Repeat("water ", 3) + "sugar milk sugar"
		keywords := ExtractKeywords(text, 20)

		for i := 1; i < len(keywords); i++ {
			assert.GreaterOrEqual(t, keywords[i-1].Frequency, keywords[i].Frequency)
		}
	})

	t.Run("case folded", func(t *testing.T) {
		keywords := ExtractKeywords("Hello HELLO hello", 20)

		assert.Equal(t, []entity.KeywordEntry{{Term: "hello", Frequency: 3}}, keywords)
	})

	t.Run("empty text yields empty result", func(t *testing.T) {
		assert.Empty(t, ExtractKeywords("", 20))
	})
}
