package models

import "time"

// Sentiment labels assigned by the metrics pipeline
const (
	SentimentPositive = "Positive"
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
)

// PostRecord is one fetched or synthesized social-media post with
// engagement counts. Sentiment and SentimentLabel are derived by the
// pipeline; the record source never sets them.
type PostRecord struct {
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
	Lang           string    `json:"lang"`
	Retweets       int       `json:"retweets"`
	Likes          int       `json:"likes"`
	Sentiment      float64   `json:"sentiment"`
	SentimentLabel string    `json:"sentiment_label,omitempty"`
}

// LabelForPolarity maps a polarity score in [-1, 1] onto its categorical
// label: positive above zero, negative below, neutral at exactly zero.
func LabelForPolarity(polarity float64) string {
	switch {
	case polarity > 0:
		return SentimentPositive
	case polarity < 0:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// LangCount is one bucket of the language histogram
type LangCount struct {
	Lang  string `json:"lang"`
	Count int    `json:"count"`
}

// LabelCount is one bucket of the sentiment-label histogram
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DayCount is one calendar-date bucket of the posting trend
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// WordCount is one token of the word-cloud surface
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}
