package main

import (
	"time"

	"github.com/sudhansukumar01234-source/twitter-analysis/internal/handlers"
	"github.com/sudhansukumar01234-source/twitter-analysis/internal/metrics"
	"github.com/sudhansukumar01234-source/twitter-analysis/internal/pipeline"
	"github.com/sudhansukumar01234-source/twitter-analysis/internal/sentiment"
	"github.com/sudhansukumar01234-source/twitter-analysis/internal/source"
	"github.com/sudhansukumar01234-source/twitter-analysis/pkg/clients/twitter"
	"github.com/sudhansukumar01234-source/twitter-analysis/pkg/config"
	"github.com/sudhansukumar01234-source/twitter-analysis/pkg/logging"
	"github.com/sudhansukumar01234-source/twitter-analysis/pkg/monitoring"
	"github.com/sudhansukumar01234-source/twitter-analysis/pkg/server"
	"github.com/sudhansukumar01234-source/twitter-analysis/pkg/version"
)

func main() {
	logger := logging.NewLoggerWithService("dashboard")
	config.LoadEnv(logger)

	bearerToken := config.GetEnv("BEARER_TOKEN", "")
	apiURL := config.GetEnv("TWITTER_API_URL", "")
	defaultQuery := config.GetEnv("DEFAULT_QUERY", "Pakistan")
	model := config.GetEnv("OLLAMA_MODEL", "llama3")
	scoreTimeout := time.Duration(config.GetEnvInt("SENTIMENT_TIMEOUT_SECONDS", 30)) * time.Second

	// A missing credential disables live fetching; the service keeps running
	// on sample data and reports itself degraded.
	var searchClient source.SearchClient
	if bearerToken != "" {
		var opts []twitter.Option
		if apiURL != "" {
			opts = append(opts, twitter.WithBaseURL(apiURL))
		}
		searchClient = twitter.NewClient(bearerToken, opts...)
	} else {
		logger.Warn("BEARER_TOKEN not set, live fetching disabled")
	}
	recordSource := source.New(searchClient, logger)

	healthChecker := monitoring.NewHealthChecker("dashboard", version.Version)
	metricsCollector := monitoring.NewMetricsCollector("dashboard", version.Version, version.GitCommit)

	healthChecker.AddCheck("credentials", monitoring.CredentialHealthCheck("BEARER_TOKEN", bearerToken))

	// Same degradation story for the scorer: if the inference server is not
	// available every record scores neutral.
	var scorer sentiment.Scorer = sentiment.NeutralScorer{}
	ollamaScorer, err := sentiment.NewOllamaScorer(model, scoreTimeout)
	if err != nil {
		logger.WithError(err).Warn("Ollama client unavailable, sentiment scoring disabled")
		healthChecker.AddCheck("ollama", monitoring.HeartbeatHealthCheck("ollama", nil))
	} else {
		scorer = ollamaScorer
		healthChecker.AddCheck("ollama", monitoring.HeartbeatHealthCheck("ollama", ollamaScorer))
	}

	serviceMetrics := &metrics.Metrics{
		FetchesTotal:        metricsCollector.NewCounter("fetches_total", "Live fetch attempts by outcome", []string{"outcome"}),
		FallbackActivations: metricsCollector.NewCounter("fallback_activations_total", "Requests served from sample data, by reason", []string{"reason"}),
		PipelineDuration:    metricsCollector.NewHistogram("pipeline_stage_duration_seconds", "Time spent in each analysis stage", []string{"stage"}, nil),
		SentimentLabels:     metricsCollector.NewCounter("sentiment_labels_total", "Scored records by sentiment label", []string{"label"}),
		ScoreFailures:       metricsCollector.NewCounter("score_failures_total", "Records that failed sentiment scoring", []string{"stage"}),
		ExportsTotal:        metricsCollector.NewCounter("exports_total", "Workbook exports by status", []string{"status"}),
	}

	analysis := pipeline.New(scorer, logger, serviceMetrics)
	handlers.Init(recordSource, analysis, logger, serviceMetrics, defaultQuery)

	app := server.SetupServiceRouter(logger, "dashboard", healthChecker, metricsCollector)

	app.GET("/", handlers.Index)
	app.GET("/api/v1/dashboard", handlers.GetDashboard)
	app.GET("/api/v1/dashboard/export", handlers.ExportDashboard)

	serverConfig := server.DefaultConfig("dashboard", "8080")
	if err := server.Start(serverConfig, app, logger); err != nil {
		logger.Fatal(err.Error())
	}
}
