package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gigbook/gig-import/internal/dateutils"
	"gigbook/gig-import/internal/logging"
	"gigbook/gig-import/internal/models"
	"gigbook/gig-import/internal/parsererror"
	"gigbook/gig-import/internal/store"
)

// CommitOptions controls one commit attempt.
type CommitOptions struct {
	// Combined records whether row combination was applied to the input.
	Combined bool
	// SkipDuplicates enables the live duplicate re-check before each insert.
	SkipDuplicates bool
}

// Orchestrator sequences payer creation, duplicate filtering, row
// persistence, and summary computation inside a trackable batch, and can
// fully reverse a committed batch. It is the only pipeline component that
// mutates the store.
type Orchestrator struct {
	store  store.Store
	logger logging.Logger
}

// NewOrchestrator creates an Orchestrator bound to a store.
func NewOrchestrator(s store.Store, logger logging.Logger) *Orchestrator {
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(nil)
	}
	return &Orchestrator{store: s, logger: logger}
}

// Commit runs one import attempt. The batch record is created before any
// payer or row is touched; a failure there aborts with no side effects. A
// payer-creation failure aborts the whole commit and removes the batch
// shell. Row persistence is best-effort: a failed insert is recorded
// against that row only. Rows are processed strictly in input order.
func (o *Orchestrator) Commit(
	ctx context.Context,
	userID string,
	rows []models.CombinedRow,
	matches []models.PayerMatch,
	opts CommitOptions,
) (models.BatchImportResult, error) {
	batch, err := o.store.CreateBatch(ctx, models.ImportBatch{
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
		RowCount:  len(rows),
		Combined:  opts.Combined,
	})
	if err != nil {
		return models.BatchImportResult{}, &parsererror.CommitError{Phase: "batch_creation", Err: err}
	}

	o.logger.WithField("batch", batch.ID).Info("Import batch created",
		logging.Field{Key: "state", Value: "created"},
		logging.Field{Key: "rows", Value: len(rows)})

	payerIDs, newPayerIDs, err := o.resolvePayers(ctx, userID, batch.ID, matches)
	if err != nil {
		// Fail fast: no rows exist yet, so deleting the batch shell fully
		// rolls the commit back.
		if delErr := o.store.DeleteBatch(ctx, userID, batch.ID); delErr != nil {
			o.logger.WithError(delErr).Error("Failed to roll back batch record",
				logging.Field{Key: "batch", Value: batch.ID})
		}
		o.logger.WithError(err).Error("Commit aborted during payer creation",
			logging.Field{Key: "state", Value: "rolled_back"})
		return models.BatchImportResult{}, &parsererror.CommitError{Phase: "payer_creation", Err: err}
	}

	o.logger.WithField("batch", batch.ID).Info("Payers resolved",
		logging.Field{Key: "state", Value: "payers_resolved"},
		logging.Field{Key: "new_payers", Value: len(newPayerIDs)})

	results := o.processRows(ctx, userID, batch.ID, rows, payerIDs, opts)

	o.logger.WithField("batch", batch.ID).Info("Rows processed",
		logging.Field{Key: "state", Value: "rows_processed"})

	summary := summarize(rows, results, len(newPayerIDs))

	batch.ImportedCount = summary.Imported
	batch.SkippedCount = summary.Skipped
	batch.ErrorCount = summary.Errored
	batch.NewPayerCount = summary.NewPayers
	batch.GrossTotal = summary.GrossTotal
	batch.TipsTotal = summary.TipsTotal
	batch.FeesTotal = summary.FeesTotal

	result := models.BatchImportResult{
		BatchID:     batch.ID,
		Rows:        results,
		NewPayerIDs: newPayerIDs,
		Summary:     summary,
	}

	if err := o.store.UpdateBatch(ctx, batch); err != nil {
		o.logger.WithError(err).Error("Failed to record batch aggregates",
			logging.Field{Key: "batch", Value: batch.ID})
		return result, &parsererror.CommitError{Phase: "summarize", Err: err}
	}

	o.logger.WithField("batch", batch.ID).Info("Import batch committed",
		logging.Field{Key: "state", Value: "committed"},
		logging.Field{Key: "imported", Value: summary.Imported},
		logging.Field{Key: "skipped", Value: summary.Skipped},
		logging.Field{Key: "errored", Value: summary.Errored})

	return result, nil
}

// resolvePayers builds the name-to-id lookup consumed by row persistence,
// creating tagged payers for every create_new match. Any create failure
// aborts the whole resolution.
func (o *Orchestrator) resolvePayers(
	ctx context.Context,
	userID, batchID string,
	matches []models.PayerMatch,
) (map[string]string, []string, error) {
	payerIDs := make(map[string]string, len(matches))
	var newPayerIDs []string

	for _, match := range matches {
		key := payerKey(match.SourceName)

		switch match.Action {
		case models.ActionUseExisting:
			payerIDs[key] = match.ExistingID
		case models.ActionCreateNew:
			payer, err := o.store.CreatePayer(ctx, models.Payer{
				UserID:   userID,
				Name:     strings.TrimSpace(match.SourceName),
				BatchTag: batchID,
			})
			if err != nil {
				return nil, nil, fmt.Errorf("creating payer %q: %w", match.SourceName, err)
			}
			payerIDs[key] = payer.ID
			newPayerIDs = append(newPayerIDs, payer.ID)
		default:
			return nil, nil, fmt.Errorf("unknown payer match action %q for %q", match.Action, match.SourceName)
		}
	}

	return payerIDs, newPayerIDs, nil
}

// processRows persists each combined row in strict input order.
func (o *Orchestrator) processRows(
	ctx context.Context,
	userID, batchID string,
	rows []models.CombinedRow,
	payerIDs map[string]string,
	opts CommitOptions,
) []models.ImportRowResult {
	results := make([]models.ImportRowResult, 0, len(rows))

	for _, row := range rows {
		result := models.ImportRowResult{RowIndexes: row.CombinedFromRows}

		if !row.IsValid() {
			result.Status = models.StatusError
			result.Error = strings.Join(row.Errors, "; ")
			results = append(results, result)
			continue
		}

		if opts.SkipDuplicates {
			dup, err := o.isDuplicate(ctx, userID, row)
			if err != nil {
				result.Status = models.StatusError
				result.Error = fmt.Sprintf("duplicate check failed: %v", err)
				results = append(results, result)
				continue
			}
			if dup {
				result.Status = models.StatusSkippedDuplicate
				results = append(results, result)
				continue
			}
		}

		payerID, ok := payerIDs[payerKey(row.Payer)]
		if !ok {
			result.Status = models.StatusError
			result.Error = fmt.Sprintf("no payer resolution for %q", row.Payer)
			results = append(results, result)
			continue
		}

		gig, err := o.store.CreateGig(ctx, models.Gig{
			UserID:        userID,
			PayerID:       payerID,
			PayerName:     strings.TrimSpace(row.Payer),
			Date:          row.Date,
			Gross:         row.Gross,
			Tips:          row.Tips,
			Fees:          row.Fees,
			PerDiem:       row.PerDiem,
			OtherIncome:   row.OtherIncome,
			TaxesWithheld: row.TaxesWithheld,
			Title:         row.Title,
			PaymentMethod: row.PaymentMethod,
			Paid:          row.Paid,
			Venue:         row.Venue,
			City:          row.City,
			State:         row.State,
			Notes:         row.Notes,
			BatchTag:      batchID,
		})
		if err != nil {
			// Best-effort: the failure stays local to this row.
			o.logger.WithError(err).Warn("Row insert failed",
				logging.Field{Key: "rows", Value: row.CombinedFromRows})
			result.Status = models.StatusError
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		result.Status = models.StatusImported
		result.GigID = gig.ID
		results = append(results, result)
	}

	return results
}

// isDuplicate re-queries the store for an existing gig with the same date,
// payer, and exact amount. This is independent of the preview-time detector
// pass and deliberately narrower: it is a cheap safety net against imports
// racing each other, not a replacement for the detector.
func (o *Orchestrator) isDuplicate(ctx context.Context, userID string, row models.CombinedRow) (bool, error) {
	gigs, err := o.store.ListGigs(ctx, userID)
	if err != nil {
		return false, err
	}

	for _, gig := range gigs {
		if dateutils.SameDay(row.Date, gig.Date) &&
			strings.EqualFold(strings.TrimSpace(row.Payer), strings.TrimSpace(gig.PayerName)) &&
			row.Gross.Equal(gig.Gross) {
			return true, nil
		}
	}
	return false, nil
}

// summarize aggregates counts and sums over rows marked imported.
func summarize(rows []models.CombinedRow, results []models.ImportRowResult, newPayers int) models.ImportSummary {
	summary := models.ImportSummary{NewPayers: newPayers}

	for i, result := range results {
		switch result.Status {
		case models.StatusImported:
			summary.Imported++
			summary.GrossTotal = summary.GrossTotal.Add(rows[i].Gross)
			summary.TipsTotal = summary.TipsTotal.Add(rows[i].Tips)
			summary.FeesTotal = summary.FeesTotal.Add(rows[i].Fees)
		case models.StatusSkippedDuplicate:
			summary.Skipped++
		case models.StatusError:
			summary.Errored++
		}
	}

	return summary
}

// Undo reverses a committed batch: delete every gig tagged with the batch
// id, then delete each payer the batch created that no longer has any gigs,
// then delete the batch record itself. The payer check runs against live
// counts so a payer the user attached later activity to survives. Undoing
// an already-undone batch returns a zero-count result, not an error.
func (o *Orchestrator) Undo(ctx context.Context, userID, batchID string) (models.UndoResult, error) {
	var result models.UndoResult

	if _, err := o.store.GetBatch(ctx, userID, batchID); err != nil {
		var notFound *parsererror.NotFoundError
		if errors.As(err, &notFound) {
			return result, nil
		}
		return result, fmt.Errorf("loading batch %s: %w", batchID, err)
	}

	gigs, err := o.store.ListGigsByBatch(ctx, userID, batchID)
	if err != nil {
		return result, fmt.Errorf("listing batch gigs: %w", err)
	}

	for _, gig := range gigs {
		if err := o.store.DeleteGig(ctx, userID, gig.ID); err != nil {
			// Leave the batch record in place so the undo can be re-attempted.
			return result, fmt.Errorf("deleting gig %s: %w", gig.ID, err)
		}
		result.GigsDeleted++
	}

	payers, err := o.store.ListPayersByBatch(ctx, userID, batchID)
	if err != nil {
		return result, fmt.Errorf("listing batch payers: %w", err)
	}

	for _, payer := range payers {
		count, err := o.store.CountGigsByPayer(ctx, userID, payer.ID)
		if err != nil {
			return result, fmt.Errorf("counting gigs for payer %s: %w", payer.ID, err)
		}
		if count > 0 {
			// The payer gained rows outside this batch; it must survive.
			o.logger.WithField("payer", payer.Name).Debug("Keeping batch payer with remaining gigs",
				logging.Field{Key: "gigs", Value: count})
			continue
		}
		if err := o.store.DeletePayer(ctx, userID, payer.ID); err != nil {
			return result, fmt.Errorf("deleting payer %s: %w", payer.ID, err)
		}
		result.PayersDeleted++
	}

	// The batch record goes last so a failed undo stays re-attemptable.
	if err := o.store.DeleteBatch(ctx, userID, batchID); err != nil {
		return result, fmt.Errorf("deleting batch record: %w", err)
	}

	o.logger.WithField("batch", batchID).Info("Import batch undone",
		logging.Field{Key: "gigs_deleted", Value: result.GigsDeleted},
		logging.Field{Key: "payers_deleted", Value: result.PayersDeleted})

	return result, nil
}

// payerKey normalizes a payer name for lookup-table purposes.
func payerKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
