package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"

	"github.com/sudhansukumar01234-source/twitter-analysis/internal/pipeline"
	"github.com/sudhansukumar01234-source/twitter-analysis/pkg/models"
)

func sampleReport() *pipeline.Report {
	return &pipeline.Report{
		Records: []models.PostRecord{
			{
				Text:           "monsoon season has started",
				CreatedAt:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
				Lang:           "en",
				Retweets:       2,
				Likes:          3,
				Sentiment:      0.4,
				SentimentLabel: models.SentimentPositive,
			},
			{
				Text:           "roads flooded again",
				CreatedAt:      time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
				Lang:           "en",
				Retweets:       4,
				Likes:          6,
				Sentiment:      -0.2,
				SentimentLabel: models.SentimentNegative,
			},
		},
		Languages:  []models.LangCount{{Lang: "en", Count: 2}},
		Sentiments: []models.LabelCount{{Label: models.SentimentPositive, Count: 1}, {Label: models.SentimentNegative, Count: 1}},
		Trend:      []models.DayCount{{Date: "2025-06-01", Count: 1}, {Date: "2025-06-02", Count: 1}},
		Words:      []models.WordCount{{Word: "monsoon", Count: 1}},
	}
}

func TestWorkbookHasAllSheets(t *testing.T) {
	buf, err := Workbook("monsoon", sampleReport())
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	file, err := xlsx.OpenReaderAt(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	for _, name := range []string{"Records", "Languages", "Sentiments", "Trend", "Words"} {
		_, ok := file.Sheet[name]
		assert.True(t, ok, "missing sheet %s", name)
	}
}

func TestWorkbookRecordsSheetContents(t *testing.T) {
	report := sampleReport()
	buf, err := Workbook("monsoon", report)
	require.NoError(t, err)

	file, err := xlsx.OpenReaderAt(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	sheet := file.Sheet["Records"]
	require.NotNil(t, sheet)
	// header plus one row per record
	assert.Equal(t, len(report.Records)+1, sheet.MaxRow)

	header, err := sheet.Row(0)
	require.NoError(t, err)
	assert.Equal(t, "Created At", header.GetCell(0).Value)
	assert.Equal(t, "Label", header.GetCell(6).Value)

	first, err := sheet.Row(1)
	require.NoError(t, err)
	assert.Equal(t, "monsoon season has started", first.GetCell(1).Value)
	assert.Equal(t, models.SentimentPositive, first.GetCell(6).Value)
}

func TestWorkbookEmptyReport(t *testing.T) {
	buf, err := Workbook("anything", &pipeline.Report{})
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}
