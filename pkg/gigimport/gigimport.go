// Package gigimport is the public surface of the import pipeline. Callers
// (a wizard UI, a job runner) feed it raw rows and get back normalized rows,
// match findings, and an undoable batch commit. All heavy lifting lives in
// the internal packages; this package only re-exports the stable API.
package gigimport

import (
	"context"

	"gigbook/gig-import/internal/importer"
	"gigbook/gig-import/internal/logging"
	"gigbook/gig-import/internal/models"
	"gigbook/gig-import/internal/store"
)

// Re-exported pipeline types.
type (
	RawRow            = models.RawRow
	ColumnMapping     = models.ColumnMapping
	NormalizedRow     = models.NormalizedRow
	PayerMatch        = models.PayerMatch
	DuplicateGroup    = models.DuplicateGroup
	CombinedRow       = models.CombinedRow
	ImportRowResult   = models.ImportRowResult
	BatchImportResult = models.BatchImportResult
	UndoResult        = models.UndoResult
	Payer             = models.Payer
	Gig               = models.Gig
	ImportBatch       = models.ImportBatch
	Store             = store.Store
	CommitOptions     = importer.CommitOptions
)

// DetectColumns proposes a column mapping for the given headers.
func DetectColumns(headers []string) ColumnMapping {
	return importer.DetectColumns(headers)
}

// NormalizeRows converts raw rows to typed rows using the mapping.
func NormalizeRows(rows []RawRow, mapping ColumnMapping) []NormalizedRow {
	return importer.NormalizeRows(rows, mapping)
}

// DistinctPayerNames extracts the distinct payer names from valid rows.
func DistinctPayerNames(rows []NormalizedRow) []string {
	return importer.DistinctPayerNames(rows)
}

// MatchPayers resolves payer names against existing payers.
func MatchPayers(names []string, existing []Payer) []PayerMatch {
	return importer.MatchPayers(names, existing)
}

// DetectDuplicates flags rows that likely already exist in the store.
func DetectDuplicates(rows []NormalizedRow, existing []Gig) []DuplicateGroup {
	return importer.DetectDuplicates(rows, existing)
}

// CombineRows optionally merges rows describing one real-world event.
func CombineRows(rows []NormalizedRow, enabled bool) []CombinedRow {
	return importer.CombineRows(rows, enabled)
}

// Importer commits and undoes import batches against a store.
type Importer struct {
	orchestrator *importer.Orchestrator
}

// NewImporter creates an Importer bound to a store.
func NewImporter(s Store, logger logging.Logger) *Importer {
	return &Importer{orchestrator: importer.NewOrchestrator(s, logger)}
}

// Commit runs one import attempt and returns per-row outcomes, new payer
// ids, and the batch summary.
func (i *Importer) Commit(ctx context.Context, userID string, rows []CombinedRow, matches []PayerMatch, opts CommitOptions) (BatchImportResult, error) {
	return i.orchestrator.Commit(ctx, userID, rows, matches, opts)
}

// Undo fully reverses a committed batch.
func (i *Importer) Undo(ctx context.Context, userID, batchID string) (UndoResult, error) {
	return i.orchestrator.Undo(ctx, userID, batchID)
}
