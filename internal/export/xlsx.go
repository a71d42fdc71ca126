// Package export renders a pipeline report as an in-memory Excel workbook.
package export

import (
	"bytes"
	"fmt"

	"github.com/tealeg/xlsx/v3"

	"github.com/sudhansukumar01234-source/twitter-analysis/internal/pipeline"
	"github.com/sudhansukumar01234-source/twitter-analysis/pkg/models"
)

// Workbook builds an xlsx file from a report, one sheet per derived output.
// The buffer is ready to stream as an attachment.
func Workbook(query string, report *pipeline.Report) (*bytes.Buffer, error) {
	file := xlsx.NewFile()

	if err := addRecordsSheet(file, report.Records); err != nil {
		return nil, err
	}
	if err := addLanguagesSheet(file, report.Languages); err != nil {
		return nil, err
	}
	if err := addSentimentsSheet(file, report.Sentiments); err != nil {
		return nil, err
	}
	if err := addTrendSheet(file, report.Trend); err != nil {
		return nil, err
	}
	if err := addWordsSheet(file, report.Words); err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := file.Write(buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook for %q: %w", query, err)
	}
	return buf, nil
}

func addRecordsSheet(file *xlsx.File, records []models.PostRecord) error {
	sheet, err := file.AddSheet("Records")
	if err != nil {
		return err
	}

	headerRow(sheet, "Created At", "Text", "Language", "Retweets", "Likes", "Sentiment", "Label")

	for _, r := range records {
		row := sheet.AddRow()

		cell := row.AddCell()
		cell.SetDateTime(r.CreatedAt)

		cell = row.AddCell()
		cell.Value = r.Text

		cell = row.AddCell()
		cell.Value = r.Lang

		cell = row.AddCell()
		cell.SetInt64(int64(r.Retweets))

		cell = row.AddCell()
		cell.SetInt64(int64(r.Likes))

		cell = row.AddCell()
		cell.SetFloat(r.Sentiment)

		cell = row.AddCell()
		cell.Value = r.SentimentLabel
	}
	return nil
}

func addLanguagesSheet(file *xlsx.File, languages []models.LangCount) error {
	sheet, err := file.AddSheet("Languages")
	if err != nil {
		return err
	}

	headerRow(sheet, "Language", "Count")
	for _, l := range languages {
		row := sheet.AddRow()
		row.AddCell().Value = l.Lang
		row.AddCell().SetInt64(int64(l.Count))
	}
	return nil
}

func addSentimentsSheet(file *xlsx.File, sentiments []models.LabelCount) error {
	sheet, err := file.AddSheet("Sentiments")
	if err != nil {
		return err
	}

	headerRow(sheet, "Label", "Count")
	for _, s := range sentiments {
		row := sheet.AddRow()
		row.AddCell().Value = s.Label
		row.AddCell().SetInt64(int64(s.Count))
	}
	return nil
}

func addTrendSheet(file *xlsx.File, trend []models.DayCount) error {
	sheet, err := file.AddSheet("Trend")
	if err != nil {
		return err
	}

	headerRow(sheet, "Date", "Count")
	for _, d := range trend {
		row := sheet.AddRow()
		row.AddCell().Value = d.Date
		row.AddCell().SetInt64(int64(d.Count))
	}
	return nil
}

func addWordsSheet(file *xlsx.File, words []models.WordCount) error {
	sheet, err := file.AddSheet("Words")
	if err != nil {
		return err
	}

	headerRow(sheet, "Word", "Count")
	for _, w := range words {
		row := sheet.AddRow()
		row.AddCell().Value = w.Word
		row.AddCell().SetInt64(int64(w.Count))
	}
	return nil
}

func headerRow(sheet *xlsx.Sheet, headers ...string) {
	row := sheet.AddRow()
	for _, h := range headers {
		row.AddCell().Value = h
	}
}
