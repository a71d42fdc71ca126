package source

import (
	"fmt"
	"time"

	"github.com/sudhansukumar01234-source/twitter-analysis/pkg/models"
)

// GenerateMock produces exactly count synthetic records so the pipeline never
// stalls on empty input. Timestamps step back five minutes per record from
// the current wall clock; engagement counts scale with the index so every
// ranking has a deterministic order. Pure generation, no I/O.
func GenerateMock(query string, count int) []models.PostRecord {
	if count <= 0 {
		return nil
	}

	now := time.Now()
	records := make([]models.PostRecord, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, models.PostRecord{
			Text:      fmt.Sprintf("This is a sample post about %s #%d", query, i),
			CreatedAt: now.Add(-time.Duration(i) * 5 * time.Minute),
			Lang:      "en",
			Retweets:  i * 2,
			Likes:     i * 3,
		})
	}
	return records
}
