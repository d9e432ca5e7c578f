package analysis

import (
	"sort"
	"strings"
	"unicode"

	"github.com/user/seo-analyzer-service/internal/entity"
)

// DefaultTopKeywords is the number of keyword entries returned when no
// limit is configured.
const DefaultTopKeywords = 20

// Common English function words excluded from the keyword table.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "is": {},
	"was": {}, "are": {}, "be": {}, "been": {}, "have": {}, "has": {},
	"had": {}, "do": {}, "does": {}, "did": {}, "will": {}, "would": {},
	"could": {}, "should": {}, "may": {}, "might": {}, "this": {},
	"that": {}, "these": {}, "those": {}, "it": {}, "its": {}, "from": {},
	"by": {}, "as": {},
}

// ExtractKeywords tokenizes the page text and returns the topN most
// frequent terms, ordered by frequency descending with ties broken by
// first encounter. The text is lower-cased and every character that is not
// an ASCII letter or whitespace is stripped before splitting, so digits and
// punctuation vanish entirely ("web3.0" contributes only "web"). Stop words
// and tokens of three characters or fewer are dropped. ASCII only, no
// stemming.
func ExtractKeywords(text string, topN int) []entity.KeywordEntry {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	counts := make(map[string]int)
	var terms []string
	for _, word := range strings.Fields(b.String()) {
		if _, stop := stopWords[word]; stop || len(word) <= 3 {
			continue
		}
		if _, seen := counts[word]; !seen {
			terms = append(terms, word)
		}
		counts[word]++
	}

	entries := make([]entity.KeywordEntry, 0, len(terms))
	for _, term := range terms {
		entries = append(entries, entity.KeywordEntry{Term: term, Frequency: counts[term]})
	}
	// Stable sort over encounter order reproduces the frequency ranking
	// with first-seen tie-breaking.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Frequency > entries[j].Frequency
	})

	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}
