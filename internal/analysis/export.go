package analysis

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/user/seo-analyzer-service/internal/entity"
)

// KeywordsCSV renders the keyword table as UTF-8 CSV with a header row,
// one "Keyword,Frequency" row per entry.
func KeywordsCSV(keywords []entity.KeywordEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Keyword", "Frequency"}); err != nil {
		return nil, err
	}
	for _, entry := range keywords {
		if err := w.Write([]string{entry.Term, strconv.Itoa(entry.Frequency)}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
