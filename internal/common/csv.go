// Package common provides shared CSV reading and report-writing helpers.
package common

import (
	"encoding/csv"
	"fmt"

	"gigbook/gig-import/internal/fileutils"
	"gigbook/gig-import/internal/models"
	"gigbook/gig-import/internal/textutils"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Delimiter is the CSV delimiter used for both reading and report output.
var Delimiter rune = ','

// SetDelimiter sets the CSV delimiter.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ReadRawRows reads a delimited file into header-keyed raw rows. The first
// record is the header; each later record becomes one RawRow. Raw rows keep
// cell values untouched; normalization happens downstream.
//
// The input mapping is header-driven, not struct-driven, because import
// files carry arbitrary user columns; gocsv needs static tags and cannot
// express that.
func ReadRawRows(filePath string) ([]string, []models.RawRow, error) {
	log.WithField("file", filePath).Info("Reading import file")

	file, err := fileutils.OpenFile(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening import file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = Delimiter
	reader.FieldsPerRecord = -1 // ragged rows are a data problem, not a read error
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing import file: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("import file is empty: %s", filePath)
	}

	// Clean headers so BOM-prefixed or padded exports still map columns.
	headers := records[0]
	for i, header := range headers {
		headers[i] = textutils.CleanCell(header)
	}

	rows := make([]models.RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(models.RawRow, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = record[i]
			}
		}
		rows = append(rows, row)
	}

	log.WithField("count", len(rows)).Info("Read import rows")
	return headers, rows, nil
}

// PreviewRow is one line of the preview report CSV.
type PreviewRow struct {
	RowIndex   int    `csv:"row"`
	Date       string `csv:"date"`
	Payer      string `csv:"payer"`
	Gross      string `csv:"gross"`
	Title      string `csv:"title"`
	PayerMatch string `csv:"payer_match"`
	Duplicate  string `csv:"duplicate"`
	Errors     string `csv:"errors"`
	Warnings   string `csv:"warnings"`
}

// WritePreviewReport writes preview rows to a CSV file using gocsv.
func WritePreviewReport(filePath string, rows []PreviewRow) error {
	file, err := fileutils.CreateFile(filePath)
	if err != nil {
		return fmt.Errorf("error creating report file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close report file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}

	log.WithFields(logrus.Fields{"file": filePath, "rows": len(rows)}).Info("Wrote preview report")
	return nil
}
