// Package dashboard defines the response types served by the dashboard API.
package dashboard

import (
	"time"

	"github.com/sudhansukumar01234-source/twitter-analysis/pkg/models"
)

// Data source markers for a dashboard response
const (
	SourceLive     = "live"
	SourceFallback = "fallback"
)

// ErrorResponse is the envelope for API errors
type ErrorResponse struct {
	Error string `json:"error"`
}

// Response is the full dashboard payload for one query
type Response struct {
	Query        string              `json:"query"`
	Source       string              `json:"source"`
	Warnings     []string            `json:"warnings,omitempty"`
	Count        int                 `json:"count"`
	Records      []models.PostRecord `json:"records"`
	Languages    []models.LangCount  `json:"languages"`
	Sentiments   []models.LabelCount `json:"sentiments"`
	Trend        []models.DayCount   `json:"trend"`
	TopLiked     []models.PostRecord `json:"top_liked"`
	TopRetweeted []models.PostRecord `json:"top_retweeted"`
	Words        []models.WordCount  `json:"words"`
	GeneratedAt  time.Time           `json:"generated_at"`
}
