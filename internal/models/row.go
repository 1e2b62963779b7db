// Package models defines the data types shared across the import pipeline:
// raw and normalized rows, match findings, combined rows, and the persisted
// payer/gig/batch entities.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Field names the canonical columns a NormalizedRow can carry.
type Field string

const (
	FieldDate          Field = "date"
	FieldPayer         Field = "payer"
	FieldGross         Field = "gross"
	FieldNetTotal      Field = "netTotal"
	FieldTitle         Field = "title"
	FieldTips          Field = "tips"
	FieldFees          Field = "fees"
	FieldPerDiem       Field = "perDiem"
	FieldOtherIncome   Field = "otherIncome"
	FieldTaxesWithheld Field = "taxesWithheld"
	FieldPaymentMethod Field = "paymentMethod"
	FieldPaid          Field = "paid"
	FieldVenue         Field = "venue"
	FieldCity          Field = "city"
	FieldState         Field = "state"
	FieldNotes         Field = "notes"
)

// AllFields lists every canonical field in display order.
var AllFields = []Field{
	FieldDate, FieldPayer, FieldGross, FieldNetTotal, FieldTitle,
	FieldTips, FieldFees, FieldPerDiem, FieldOtherIncome, FieldTaxesWithheld,
	FieldPaymentMethod, FieldPaid, FieldVenue, FieldCity, FieldState, FieldNotes,
}

// RawRow is one line of the input file: header string to raw cell value.
// It is immutable once parsed; the pipeline never writes back into it.
type RawRow map[string]string

// ColumnMapping maps each canonical field to the source header it should be
// read from. A field absent from the map is simply not populated.
type ColumnMapping map[Field]string

// HasAmountSource reports whether the mapping can produce an amount at all,
// from either the gross or the net-total column.
func (m ColumnMapping) HasAmountSource() bool {
	return m[FieldGross] != "" || m[FieldNetTotal] != ""
}

// NormalizedRow is the typed form of one RawRow. RowIndex is the 1-based
// position in the original file and is preserved through every downstream
// transform; it is the only stable cross-reference between pipeline stages.
type NormalizedRow struct {
	RowIndex int `json:"rowIndex" yaml:"row_index"`

	Date          time.Time       `json:"date" yaml:"date"`
	Payer         string          `json:"payer" yaml:"payer"`
	Gross         decimal.Decimal `json:"gross" yaml:"gross"`
	Tips          decimal.Decimal `json:"tips" yaml:"tips"`
	Fees          decimal.Decimal `json:"fees" yaml:"fees"`
	PerDiem       decimal.Decimal `json:"perDiem" yaml:"per_diem"`
	OtherIncome   decimal.Decimal `json:"otherIncome" yaml:"other_income"`
	TaxesWithheld decimal.Decimal `json:"taxesWithheld" yaml:"taxes_withheld"`
	Title         string          `json:"title" yaml:"title"`
	PaymentMethod string          `json:"paymentMethod" yaml:"payment_method"`
	Paid          bool            `json:"paid" yaml:"paid"`
	Venue         string          `json:"venue" yaml:"venue"`
	City          string          `json:"city" yaml:"city"`
	State         string          `json:"state" yaml:"state"`
	Notes         string          `json:"notes" yaml:"notes"`

	// Errors block persistence; warnings are informational only.
	Errors   []string `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// IsValid reports whether the row carries no blocking errors.
func (r NormalizedRow) IsValid() bool {
	return len(r.Errors) == 0
}

// CombinedRow is one row as it will be persisted: either a passthrough of a
// single NormalizedRow or the merge of several rows describing one event.
type CombinedRow struct {
	NormalizedRow

	// CombinedFromRows holds the original RowIndex values that contributed.
	// Always non-empty; a passthrough row holds exactly its own index.
	CombinedFromRows []int `json:"combinedFromRows" yaml:"combined_from_rows"`
	IsCombined       bool  `json:"isCombined" yaml:"is_combined"`
}
