package models

import "github.com/shopspring/decimal"

// RowStatus is the outcome of processing one CombinedRow.
type RowStatus string

const (
	StatusImported         RowStatus = "imported"
	StatusSkippedDuplicate RowStatus = "skipped_duplicate"
	StatusError            RowStatus = "error"
)

// ImportRowResult records the outcome for one CombinedRow.
type ImportRowResult struct {
	RowIndexes []int     `json:"rowIndexes" yaml:"row_indexes"`
	Status     RowStatus `json:"status" yaml:"status"`
	GigID      string    `json:"gigId,omitempty" yaml:"gig_id,omitempty"`
	Error      string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// ImportSummary aggregates the committed batch.
type ImportSummary struct {
	Imported   int             `json:"imported" yaml:"imported"`
	Skipped    int             `json:"skipped" yaml:"skipped"`
	Errored    int             `json:"errored" yaml:"errored"`
	NewPayers  int             `json:"newPayers" yaml:"new_payers"`
	GrossTotal decimal.Decimal `json:"grossTotal" yaml:"gross_total"`
	TipsTotal  decimal.Decimal `json:"tipsTotal" yaml:"tips_total"`
	FeesTotal  decimal.Decimal `json:"feesTotal" yaml:"fees_total"`
}

// BatchImportResult is the full outcome of a commit: per-row results, the ids
// of payers the batch created, and the summary.
type BatchImportResult struct {
	BatchID     string            `json:"batchId" yaml:"batch_id"`
	Rows        []ImportRowResult `json:"rows" yaml:"rows"`
	NewPayerIDs []string          `json:"newPayerIds,omitempty" yaml:"new_payer_ids,omitempty"`
	Summary     ImportSummary     `json:"summary" yaml:"summary"`
}

// UndoResult reports what an undo removed.
type UndoResult struct {
	GigsDeleted   int `json:"gigsDeleted" yaml:"gigs_deleted"`
	PayersDeleted int `json:"payersDeleted" yaml:"payers_deleted"`
}
