// Package importer implements the reconciliation and batch-commit pipeline:
// column detection, row normalization, payer matching, duplicate detection,
// row combination, and the commit/undo orchestration.
package importer

import (
	"errors"
	"fmt"
	"strings"

	"gigbook/gig-import/internal/currencyutils"
	"gigbook/gig-import/internal/dateutils"
	"gigbook/gig-import/internal/models"
	"gigbook/gig-import/internal/parsererror"
	"gigbook/gig-import/internal/textutils"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var errNegativeAmount = errors.New("negative amount not allowed")

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// NormalizeRows converts raw rows into typed NormalizedRows using the given
// column mapping. Output has the same length and order as the input;
// RowIndex is the 1-based position in the file. Rows that fail validation
// are still emitted, with Errors populated, so previews can show them.
func NormalizeRows(rows []models.RawRow, mapping models.ColumnMapping) []models.NormalizedRow {
	normalized := make([]models.NormalizedRow, 0, len(rows))
	for i, raw := range rows {
		normalized = append(normalized, normalizeRow(raw, mapping, i+1))
	}

	log.WithFields(logrus.Fields{"rows": len(rows)}).Debug("Normalized import rows")
	return normalized
}

func normalizeRow(raw models.RawRow, mapping models.ColumnMapping, rowIndex int) models.NormalizedRow {
	row := models.NormalizedRow{RowIndex: rowIndex}

	cell := func(field models.Field) string {
		header, ok := mapping[field]
		if !ok {
			return ""
		}
		return textutils.CleanCell(raw[header])
	}

	// Date is required.
	if dateStr := cell(models.FieldDate); dateStr == "" {
		row.Errors = append(row.Errors, "missing required field: date")
	} else if date, err := dateutils.ParseDate(dateStr); err != nil {
		row.Errors = append(row.Errors, fieldError(models.FieldDate, dateStr, err))
	} else {
		row.Date = date
	}

	// Payer is required.
	row.Payer = cell(models.FieldPayer)
	if row.Payer == "" {
		row.Errors = append(row.Errors, "missing required field: payer")
	}

	// Amount comes from gross, falling back to net total.
	if grossStr := cell(models.FieldGross); grossStr != "" {
		row.Gross = normalizeAmount(&row, models.FieldGross, grossStr)
	} else if netStr := cell(models.FieldNetTotal); netStr != "" {
		before := len(row.Errors)
		row.Gross = normalizeAmount(&row, models.FieldNetTotal, netStr)
		if len(row.Errors) == before {
			row.Warnings = append(row.Warnings, "net total used as gross amount")
		}
	} else {
		row.Errors = append(row.Errors, "missing required field: amount (gross or net total)")
	}

	// Optional money fields.
	row.Tips = normalizeAmount(&row, models.FieldTips, cell(models.FieldTips))
	row.Fees = normalizeAmount(&row, models.FieldFees, cell(models.FieldFees))
	row.PerDiem = normalizeAmount(&row, models.FieldPerDiem, cell(models.FieldPerDiem))
	row.OtherIncome = normalizeAmount(&row, models.FieldOtherIncome, cell(models.FieldOtherIncome))
	row.TaxesWithheld = normalizeAmount(&row, models.FieldTaxesWithheld, cell(models.FieldTaxesWithheld))

	// Free-text fields pass through cleaned.
	row.Title = cell(models.FieldTitle)
	row.PaymentMethod = cell(models.FieldPaymentMethod)
	row.Venue = cell(models.FieldVenue)
	row.City = cell(models.FieldCity)
	row.State = cell(models.FieldState)
	row.Notes = cell(models.FieldNotes)

	row.Paid = normalizeBool(&row, cell(models.FieldPaid))

	return row
}

// normalizeAmount parses one money cell. An empty cell is zero; a negative
// or unparsable value is a blocking error on the row.
func normalizeAmount(row *models.NormalizedRow, field models.Field, value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}

	amount, err := currencyutils.ParseAmount(value)
	if err != nil {
		row.Errors = append(row.Errors, fieldError(field, value, err))
		return decimal.Zero
	}
	if amount.IsNegative() {
		row.Errors = append(row.Errors, fieldError(field, value, errNegativeAmount))
		return decimal.Zero
	}

	return amount
}

// fieldError renders a per-field parse failure for the row's error list.
func fieldError(field models.Field, value string, err error) string {
	parseErr := &parsererror.ParseError{Field: string(field), Value: value, Err: err}
	return parseErr.Error()
}

// normalizeBool parses a yes/no cell. Unrecognized non-empty values default
// to false with a warning, never a blocking error.
func normalizeBool(row *models.NormalizedRow, value string) bool {
	if value == "" {
		return false
	}

	switch strings.ToLower(value) {
	case "yes", "y", "true", "1":
		return true
	case "no", "n", "false", "0":
		return false
	default:
		row.Warnings = append(row.Warnings, fmt.Sprintf("unrecognized paid value %q, defaulted to no", value))
		return false
	}
}
