package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds all Prometheus metrics for the dashboard service
type Metrics struct {
	FetchesTotal        *prometheus.CounterVec
	FallbackActivations *prometheus.CounterVec
	PipelineDuration    *prometheus.HistogramVec
	SentimentLabels     *prometheus.CounterVec
	ScoreFailures       *prometheus.CounterVec
	ExportsTotal        *prometheus.CounterVec
}
