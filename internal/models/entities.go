package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payer is a stored counterparty entity. BatchTag is set only on payers
// created by an import commit and enables the undo safety check.
type Payer struct {
	ID       string `json:"id" yaml:"id"`
	UserID   string `json:"userId" yaml:"user_id"`
	Name     string `json:"name" yaml:"name"`
	BatchTag string `json:"batchTag,omitempty" yaml:"batch_tag,omitempty"`
}

// Gig is a stored income event. Every gig persisted by an import carries the
// batch id that created it.
type Gig struct {
	ID            string          `json:"id" yaml:"id"`
	UserID        string          `json:"userId" yaml:"user_id"`
	PayerID       string          `json:"payerId" yaml:"payer_id"`
	PayerName     string          `json:"payerName" yaml:"payer_name"`
	Date          time.Time       `json:"date" yaml:"date"`
	Gross         decimal.Decimal `json:"gross" yaml:"gross"`
	Tips          decimal.Decimal `json:"tips" yaml:"tips"`
	Fees          decimal.Decimal `json:"fees" yaml:"fees"`
	PerDiem       decimal.Decimal `json:"perDiem" yaml:"per_diem"`
	OtherIncome   decimal.Decimal `json:"otherIncome" yaml:"other_income"`
	TaxesWithheld decimal.Decimal `json:"taxesWithheld" yaml:"taxes_withheld"`
	Title         string          `json:"title,omitempty" yaml:"title,omitempty"`
	PaymentMethod string          `json:"paymentMethod,omitempty" yaml:"payment_method,omitempty"`
	Paid          bool            `json:"paid" yaml:"paid"`
	Venue         string          `json:"venue,omitempty" yaml:"venue,omitempty"`
	City          string          `json:"city,omitempty" yaml:"city,omitempty"`
	State         string          `json:"state,omitempty" yaml:"state,omitempty"`
	Notes         string          `json:"notes,omitempty" yaml:"notes,omitempty"`
	BatchTag      string          `json:"batchTag,omitempty" yaml:"batch_tag,omitempty"`
}

// ImportBatch is one commit attempt's unit of atomicity and undo. It is
// created before any row is persisted, updated with aggregates after all
// rows are processed, and deleted on undo or on total failure.
type ImportBatch struct {
	ID            string          `json:"id" yaml:"id"`
	UserID        string          `json:"userId" yaml:"user_id"`
	CreatedAt     time.Time       `json:"createdAt" yaml:"created_at"`
	RowCount      int             `json:"rowCount" yaml:"row_count"`
	Combined      bool            `json:"combined" yaml:"combined"`
	ImportedCount int             `json:"importedCount" yaml:"imported_count"`
	SkippedCount  int             `json:"skippedCount" yaml:"skipped_count"`
	ErrorCount    int             `json:"errorCount" yaml:"error_count"`
	NewPayerCount int             `json:"newPayerCount" yaml:"new_payer_count"`
	GrossTotal    decimal.Decimal `json:"grossTotal" yaml:"gross_total"`
	TipsTotal     decimal.Decimal `json:"tipsTotal" yaml:"tips_total"`
	FeesTotal     decimal.Decimal `json:"feesTotal" yaml:"fees_total"`
}
