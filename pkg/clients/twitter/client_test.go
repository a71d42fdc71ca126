package twitter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// newTestClient creates a client without an executor so tests use the direct client.Do path.
// This avoids retry policies wrapping errors as ExceededError.
func newTestClient(baseURL string) *Client {
	return &Client{
		baseURL:     baseURL,
		bearerToken: "test-token",
		client:      &http.Client{},
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("tok")
	if c.baseURL != defaultBaseURL {
		t.Fatalf("expected default base URL, got %s", c.baseURL)
	}
	if c.bearerToken != "tok" {
		t.Fatalf("expected bearer token tok, got %s", c.bearerToken)
	}
	if c.client == nil {
		t.Fatal("expected non-nil HTTP client")
	}
	if c.client.Timeout != 10*time.Second {
		t.Fatalf("expected timeout 10s, got %v", c.client.Timeout)
	}
	if c.httpExecutor == nil {
		t.Fatal("expected non-nil httpExecutor")
	}
}

func TestWithBaseURLOption(t *testing.T) {
	c := NewClient("tok", WithBaseURL("http://localhost:9999"))
	if c.baseURL != "http://localhost:9999" {
		t.Fatalf("expected overridden base URL, got %s", c.baseURL)
	}

	c = NewClient("tok", WithBaseURL(""))
	if c.baseURL != defaultBaseURL {
		t.Fatal("empty base URL should not replace default")
	}
}

func TestWithHTTPClientNilIgnored(t *testing.T) {
	c := NewClient("tok", WithHTTPClient(nil))
	if c.client == nil {
		t.Fatal("nil client should not replace default")
	}
}

func TestSearchRecent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2/tweets/search/recent" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Fatalf("unexpected auth header %q", got)
		}
		q := r.URL.Query()
		if q.Get("query") != "golang lang:en -is:retweet" {
			t.Fatalf("unexpected query %q", q.Get("query"))
		}
		if q.Get("max_results") != "10" {
			t.Fatalf("unexpected max_results %q", q.Get("max_results"))
		}
		if q.Get("tweet.fields") != "created_at,public_metrics,lang" {
			t.Fatalf("unexpected tweet.fields %q", q.Get("tweet.fields"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{
					"id": "1",
					"text": "loving golang",
					"created_at": "2025-06-01T12:00:00Z",
					"lang": "en",
					"public_metrics": {"retweet_count": 4, "reply_count": 1, "like_count": 9, "quote_count": 0}
				}
			],
			"meta": {"result_count": 1}
		}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	tweets, err := c.SearchRecent(context.Background(), "golang lang:en -is:retweet", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tweets) != 1 {
		t.Fatalf("expected 1 tweet, got %d", len(tweets))
	}
	tw := tweets[0]
	if tw.Text != "loving golang" || tw.Lang != "en" {
		t.Fatalf("unexpected tweet %+v", tw)
	}
	if tw.PublicMetrics.LikeCount != 9 || tw.PublicMetrics.RetweetCount != 4 {
		t.Fatalf("unexpected metrics %+v", tw.PublicMetrics)
	}
	if tw.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be parsed")
	}
}

func TestSearchRecentNoMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"meta": {"result_count": 0}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	tweets, err := c.SearchRecent(context.Background(), "nothing", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tweets) != 0 {
		t.Fatalf("expected empty result, got %d", len(tweets))
	}
}

func TestSearchRecentAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors": [{"title": "Unauthorized", "detail": "bad token"}]}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.SearchRecent(context.Background(), "golang", 10)
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", apiErr.StatusCode)
	}
	if apiErr.Detail != "bad token" {
		t.Fatalf("expected detail from body, got %q", apiErr.Detail)
	}
}

func TestSearchRecentMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if _, err := c.SearchRecent(context.Background(), "golang", 10); err == nil {
		t.Fatal("expected decode error")
	}
}
