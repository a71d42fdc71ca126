// Package source fetches post records from the search API and synthesizes
// fallback records when the live path yields nothing.
package source

import (
	"context"
	"fmt"

	"github.com/sudhansukumar01234-source/twitter-analysis/pkg/clients/twitter"
	"github.com/sudhansukumar01234-source/twitter-analysis/pkg/logging"
	"github.com/sudhansukumar01234-source/twitter-analysis/pkg/models"
)

// liveFilter restricts live fetches to one language and excludes re-shares.
const liveFilter = "lang:en -is:retweet"

// SearchClient is the slice of the twitter client the source needs.
// Tests inject a fake.
type SearchClient interface {
	SearchRecent(ctx context.Context, query string, maxResults int) ([]twitter.Tweet, error)
}

// FetchOutcome reports why a fetch produced what it produced. Every non-OK
// outcome is handled the same way downstream (fallback data), but the
// user-facing warning names the actual cause.
type FetchOutcome int

const (
	OutcomeOK FetchOutcome = iota
	OutcomeEmpty
	OutcomeError
	OutcomeDisabled
)

func (o FetchOutcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeEmpty:
		return "empty"
	case OutcomeError:
		return "error"
	case OutcomeDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Source wraps the search client. A nil client means live fetching is
// disabled (missing credential); the source then always reports
// OutcomeDisabled.
type Source struct {
	client SearchClient
	logger logging.Logger
}

func New(client SearchClient, logger logging.Logger) *Source {
	return &Source{client: client, logger: logger}
}

// Enabled reports whether a live search client is configured.
func (s *Source) Enabled() bool {
	return s.client != nil
}

// Fetch returns recent posts matching query, never more than limit. Failures
// are logged and reported through the outcome instead of an error: the caller
// always gets a slice it can hand to the fallback check.
func (s *Source) Fetch(ctx context.Context, query string, limit int) ([]models.PostRecord, FetchOutcome) {
	if s.client == nil {
		s.logger.WithField("query", query).Debug("Live fetch skipped: no search client configured")
		return nil, OutcomeDisabled
	}

	finalQuery := fmt.Sprintf("%s %s", query, liveFilter)
	tweets, err := s.client.SearchRecent(ctx, finalQuery, limit)
	if err != nil {
		s.logger.WithFields(logging.Fields{
			"query": query,
			"limit": limit,
			"error": err,
		}).Warn("Recent search failed")
		return nil, OutcomeError
	}

	if len(tweets) == 0 {
		s.logger.WithField("query", query).Info("Recent search returned no posts")
		return nil, OutcomeEmpty
	}

	records := make([]models.PostRecord, 0, len(tweets))
	for _, tw := range tweets {
		records = append(records, models.PostRecord{
			Text:      tw.Text,
			CreatedAt: tw.CreatedAt,
			Lang:      tw.Lang,
			Retweets:  tw.PublicMetrics.RetweetCount,
			Likes:     tw.PublicMetrics.LikeCount,
		})
	}
	return records, OutcomeOK
}
