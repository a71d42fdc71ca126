// Package pipeline computes the derived metrics behind the dashboard from a
// batch of post records.
package pipeline

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/RadhiFadlillah/whatlanggo"

	"github.com/sudhansukumar01234-source/twitter-analysis/internal/metrics"
	"github.com/sudhansukumar01234-source/twitter-analysis/internal/sentiment"
	"github.com/sudhansukumar01234-source/twitter-analysis/internal/wordcloud"
	"github.com/sudhansukumar01234-source/twitter-analysis/pkg/logging"
	"github.com/sudhansukumar01234-source/twitter-analysis/pkg/models"
)

// ErrNoRecords is returned when Analyze is called on an empty batch. The
// fallback generator upstream is supposed to make this impossible.
var ErrNoRecords = errors.New("no records to analyze")

// topN is how many records each engagement ranking keeps.
const topN = 5

// wordLimit caps the word-cloud surface.
const wordLimit = 50

// Report carries the five derived outputs for one batch. Each output is
// computed independently from the same input records.
type Report struct {
	Records      []models.PostRecord
	Languages    []models.LangCount
	Sentiments   []models.LabelCount
	Trend        []models.DayCount
	TopLiked     []models.PostRecord
	TopRetweeted []models.PostRecord
	Words        []models.WordCount
}

// Pipeline scores and aggregates post records. The scorer is injected so
// tests run without a live model.
type Pipeline struct {
	scorer         sentiment.Scorer
	words          *wordcloud.Builder
	logger         logging.Logger
	serviceMetrics *metrics.Metrics
}

func New(scorer sentiment.Scorer, logger logging.Logger, m *metrics.Metrics) *Pipeline {
	return &Pipeline{
		scorer:         scorer,
		words:          wordcloud.NewBuilder(),
		logger:         logger,
		serviceMetrics: m,
	}
}

// Analyze derives sentiment for each record and builds all aggregates.
// Input records are not mutated; the returned records carry the derived
// fields. A scorer failure on one record yields a neutral score for that
// record instead of failing the batch.
func (p *Pipeline) Analyze(ctx context.Context, records []models.PostRecord) (*Report, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	scored := p.scoreRecords(ctx, records)

	start := time.Now()
	report := &Report{
		Records:      scored,
		Languages:    languageHistogram(scored),
		Sentiments:   sentimentHistogram(scored),
		Trend:        dailyTrend(scored),
		TopLiked:     topBy(scored, topN, func(r models.PostRecord) int { return r.Likes }),
		TopRetweeted: topBy(scored, topN, func(r models.PostRecord) int { return r.Retweets }),
		Words:        p.wordFrequencies(scored),
	}
	if p.serviceMetrics != nil {
		p.serviceMetrics.PipelineDuration.WithLabelValues("aggregate").Observe(time.Since(start).Seconds())
	}

	return report, nil
}

func (p *Pipeline) scoreRecords(ctx context.Context, records []models.PostRecord) []models.PostRecord {
	start := time.Now()
	defer func() {
		if p.serviceMetrics != nil {
			p.serviceMetrics.PipelineDuration.WithLabelValues("sentiment").Observe(time.Since(start).Seconds())
		}
	}()

	scored := make([]models.PostRecord, len(records))
	copy(scored, records)

	for i := range scored {
		polarity, err := p.scorer.Score(ctx, scored[i].Text)
		if err != nil {
			p.logger.WithFields(logging.Fields{
				"index": i,
				"error": err,
			}).Warn("Sentiment scoring failed, treating record as neutral")
			if p.serviceMetrics != nil {
				p.serviceMetrics.ScoreFailures.WithLabelValues("score").Inc()
			}
			polarity = 0
		}
		scored[i].Sentiment = polarity
		scored[i].SentimentLabel = models.LabelForPolarity(polarity)
		if p.serviceMetrics != nil {
			p.serviceMetrics.SentimentLabels.WithLabelValues(scored[i].SentimentLabel).Inc()
		}

		if scored[i].Lang == "" {
			scored[i].Lang = detectLang(scored[i].Text)
		}
	}
	return scored
}

// detectLang fills in a missing language code. Live and synthetic records
// always carry one, so this only covers degenerate inputs.
func detectLang(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return "und"
	}
	if code := info.Lang.Iso6391(); code != "" {
		return code
	}
	return "und"
}

func languageHistogram(records []models.PostRecord) []models.LangCount {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Lang]++
	}

	hist := make([]models.LangCount, 0, len(counts))
	for lang, count := range counts {
		hist = append(hist, models.LangCount{Lang: lang, Count: count})
	}
	sort.Slice(hist, func(i, j int) bool {
		if hist[i].Count != hist[j].Count {
			return hist[i].Count > hist[j].Count
		}
		return hist[i].Lang < hist[j].Lang
	})
	return hist
}

func sentimentHistogram(records []models.PostRecord) []models.LabelCount {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.SentimentLabel]++
	}

	hist := make([]models.LabelCount, 0, len(counts))
	for label, count := range counts {
		hist = append(hist, models.LabelCount{Label: label, Count: count})
	}
	sort.Slice(hist, func(i, j int) bool {
		if hist[i].Count != hist[j].Count {
			return hist[i].Count > hist[j].Count
		}
		return hist[i].Label < hist[j].Label
	})
	return hist
}

// dailyTrend buckets records by local calendar date, oldest first.
func dailyTrend(records []models.PostRecord) []models.DayCount {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.CreatedAt.Local().Format("2006-01-02")]++
	}

	trend := make([]models.DayCount, 0, len(counts))
	for date, count := range counts {
		trend = append(trend, models.DayCount{Date: date, Count: count})
	}
	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Date < trend[j].Date
	})
	return trend
}

// topBy returns up to n records in descending key order; ties keep input
// order.
func topBy(records []models.PostRecord, n int, key func(models.PostRecord) int) []models.PostRecord {
	ranked := make([]models.PostRecord, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		return key(ranked[i]) > key(ranked[j])
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

func (p *Pipeline) wordFrequencies(records []models.PostRecord) []models.WordCount {
	start := time.Now()
	defer func() {
		if p.serviceMetrics != nil {
			p.serviceMetrics.PipelineDuration.WithLabelValues("words").Observe(time.Since(start).Seconds())
		}
	}()

	texts := make([]string, 0, len(records))
	for _, r := range records {
		texts = append(texts, r.Text)
	}
	return p.words.Top(texts, wordLimit)
}
