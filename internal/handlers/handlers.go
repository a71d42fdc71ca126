package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sudhansukumar01234-source/twitter-analysis/internal/export"
	"github.com/sudhansukumar01234-source/twitter-analysis/internal/metrics"
	"github.com/sudhansukumar01234-source/twitter-analysis/internal/pipeline"
	"github.com/sudhansukumar01234-source/twitter-analysis/internal/source"
	"github.com/sudhansukumar01234-source/twitter-analysis/pkg/api/dashboard"
	"github.com/sudhansukumar01234-source/twitter-analysis/pkg/logging"
)

// Bounds on the max_results query parameter. Out-of-range values are clamped
// rather than rejected.
const (
	MinResults     = 5
	MaxResults     = 20
	DefaultResults = 10
)

var (
	recordSource   *source.Source
	analysis       *pipeline.Pipeline
	logger         logging.Logger
	serviceMetrics *metrics.Metrics
	defaultQuery   string
)

// Init initializes the handlers package with the record source, pipeline and metrics
func Init(src *source.Source, pipe *pipeline.Pipeline, log logging.Logger, m *metrics.Metrics, defQuery string) {
	recordSource = src
	analysis = pipe
	logger = log
	serviceMetrics = m
	defaultQuery = defQuery
}

// GetDashboard returns the full analysis payload for one query
func GetDashboard(c *gin.Context) {
	query, maxResults, ok := parseParams(c)
	if !ok {
		return
	}

	report, src, warnings, err := buildReport(c, query, maxResults)
	if err != nil {
		logger.WithFields(logging.Fields{
			"query": query,
			"error": err,
		}).Error("Failed to analyze records")
		c.JSON(http.StatusInternalServerError, dashboard.ErrorResponse{Error: "Failed to analyze records"})
		return
	}

	c.JSON(http.StatusOK, dashboard.Response{
		Query:        query,
		Source:       src,
		Warnings:     warnings,
		Count:        len(report.Records),
		Records:      report.Records,
		Languages:    report.Languages,
		Sentiments:   report.Sentiments,
		Trend:        report.Trend,
		TopLiked:     report.TopLiked,
		TopRetweeted: report.TopRetweeted,
		Words:        report.Words,
		GeneratedAt:  time.Now().UTC(),
	})
}

// ExportDashboard streams the same analysis as an Excel workbook
func ExportDashboard(c *gin.Context) {
	query, maxResults, ok := parseParams(c)
	if !ok {
		return
	}

	report, _, _, err := buildReport(c, query, maxResults)
	if err != nil {
		logger.WithFields(logging.Fields{
			"query": query,
			"error": err,
		}).Error("Failed to analyze records for export")
		c.JSON(http.StatusInternalServerError, dashboard.ErrorResponse{Error: "Failed to analyze records"})
		return
	}

	buf, err := export.Workbook(query, report)
	if err != nil {
		if serviceMetrics != nil {
			serviceMetrics.ExportsTotal.WithLabelValues("error").Inc()
		}
		logger.WithFields(logging.Fields{
			"query": query,
			"error": err,
		}).Error("Failed to build workbook")
		c.JSON(http.StatusInternalServerError, dashboard.ErrorResponse{Error: "Failed to build workbook"})
		return
	}

	if serviceMetrics != nil {
		serviceMetrics.ExportsTotal.WithLabelValues("success").Inc()
	}

	filename := fmt.Sprintf("dashboard-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// parseParams validates the query and max_results parameters. On failure it
// writes the error response itself and reports ok=false.
func parseParams(c *gin.Context) (query string, maxResults int, ok bool) {
	query = strings.TrimSpace(c.DefaultQuery("query", defaultQuery))
	if query == "" {
		c.JSON(http.StatusBadRequest, dashboard.ErrorResponse{Error: "Query must not be empty"})
		return "", 0, false
	}

	raw := c.DefaultQuery("max_results", strconv.Itoa(DefaultResults))
	maxResults, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dashboard.ErrorResponse{Error: "Invalid max_results value"})
		return "", 0, false
	}
	if maxResults < MinResults {
		maxResults = MinResults
	}
	if maxResults > MaxResults {
		maxResults = MaxResults
	}
	return query, maxResults, true
}

// buildReport runs fetch, fallback and analysis for one request. The returned
// source marker and warnings describe where the records came from.
func buildReport(c *gin.Context, query string, maxResults int) (*pipeline.Report, string, []string, error) {
	ctx := c.Request.Context()

	records, outcome := recordSource.Fetch(ctx, query, maxResults)
	if serviceMetrics != nil {
		serviceMetrics.FetchesTotal.WithLabelValues(outcome.String()).Inc()
	}

	src := dashboard.SourceLive
	var warnings []string
	if outcome != source.OutcomeOK {
		warnings = append(warnings, fallbackWarning(outcome))
		records = source.GenerateMock(query, maxResults)
		src = dashboard.SourceFallback
		if serviceMetrics != nil {
			serviceMetrics.FallbackActivations.WithLabelValues(outcome.String()).Inc()
		}
		logger.WithFields(logging.Fields{
			"query":   query,
			"outcome": outcome.String(),
		}).Info("Serving sample data")
	}

	report, err := analysis.Analyze(ctx, records)
	if err != nil {
		return nil, "", nil, err
	}
	return report, src, warnings, nil
}

// fallbackWarning names the actual cause so an API failure is never presented
// as an empty result set.
func fallbackWarning(outcome source.FetchOutcome) string {
	switch outcome {
	case source.OutcomeDisabled:
		return "Live fetching is disabled (no API credential configured); showing sample data."
	case source.OutcomeError:
		return "Live fetch failed; showing sample data."
	case source.OutcomeEmpty:
		return "No recent posts matched the query; showing sample data."
	default:
		return "Showing sample data."
	}
}
