package importer

import (
	"fmt"
	"strings"

	"gigbook/gig-import/internal/dateutils"
	"gigbook/gig-import/internal/models"

	"github.com/sirupsen/logrus"
)

// combinedNotesSeparator joins the notes of merged rows.
const combinedNotesSeparator = " | "

// CombineRows merges rows that describe one real-world event split across
// multiple lines. Disabled, it is an identity passthrough. Enabled, it makes
// a single greedy pass in original order: each not-yet-grouped row anchors a
// group and absorbs every later not-yet-grouped row with the same date, the
// same payer (case-insensitive), and a title that matches case-insensitively
// or is absent on either side. Rows already consumed by an earlier group
// never start or join another one. Rows with blocking errors pass through
// untouched. Every input row is covered exactly once.
func CombineRows(rows []models.NormalizedRow, enabled bool) []models.CombinedRow {
	if !enabled {
		out := make([]models.CombinedRow, 0, len(rows))
		for _, row := range rows {
			out = append(out, passthrough(row))
		}
		return out
	}

	consumed := make(map[int]bool, len(rows))
	var out []models.CombinedRow

	for i, anchor := range rows {
		if consumed[i] {
			continue
		}
		consumed[i] = true

		if !anchor.IsValid() {
			out = append(out, passthrough(anchor))
			continue
		}

		group := []models.NormalizedRow{anchor}
		for j := i + 1; j < len(rows); j++ {
			if consumed[j] || !rows[j].IsValid() {
				continue
			}
			if sameEvent(anchor, rows[j]) {
				group = append(group, rows[j])
				consumed[j] = true
			}
		}

		if len(group) == 1 {
			out = append(out, passthrough(anchor))
			continue
		}

		out = append(out, merge(group))
	}

	log.WithFields(logrus.Fields{"in": len(rows), "out": len(out)}).Debug("Combined import rows")
	return out
}

// sameEvent reports whether a candidate row belongs to the anchor's group.
// Grouping is judged against the anchor only, not pairwise within the group.
func sameEvent(anchor, candidate models.NormalizedRow) bool {
	if !dateutils.SameDay(anchor.Date, candidate.Date) {
		return false
	}
	if !strings.EqualFold(strings.TrimSpace(anchor.Payer), strings.TrimSpace(candidate.Payer)) {
		return false
	}
	if anchor.Title == "" || candidate.Title == "" {
		return true
	}
	return strings.EqualFold(anchor.Title, candidate.Title)
}

func passthrough(row models.NormalizedRow) models.CombinedRow {
	return models.CombinedRow{
		NormalizedRow:    row,
		CombinedFromRows: []int{row.RowIndex},
		IsCombined:       false,
	}
}

// merge folds a group of two or more rows into one CombinedRow anchored on
// the first row. Numeric fields are summed; notes are concatenated; string
// fields take the first non-empty value in group order.
func merge(group []models.NormalizedRow) models.CombinedRow {
	combined := models.CombinedRow{
		NormalizedRow: group[0],
		IsCombined:    true,
	}
	// Detach the warning slice so appends cannot write into the anchor row.
	combined.Warnings = append([]string(nil), group[0].Warnings...)

	var notes []string
	var indexStrs []string
	for _, row := range group {
		combined.CombinedFromRows = append(combined.CombinedFromRows, row.RowIndex)
		indexStrs = append(indexStrs, fmt.Sprintf("%d", row.RowIndex))
		if row.Notes != "" {
			notes = append(notes, row.Notes)
		}
	}

	for _, row := range group[1:] {
		combined.Gross = combined.Gross.Add(row.Gross)
		combined.Tips = combined.Tips.Add(row.Tips)
		combined.Fees = combined.Fees.Add(row.Fees)
		combined.PerDiem = combined.PerDiem.Add(row.PerDiem)
		combined.OtherIncome = combined.OtherIncome.Add(row.OtherIncome)
		combined.TaxesWithheld = combined.TaxesWithheld.Add(row.TaxesWithheld)

		if combined.Title == "" {
			combined.Title = row.Title
		}
		if combined.PaymentMethod == "" {
			combined.PaymentMethod = row.PaymentMethod
		}
		if combined.Venue == "" {
			combined.Venue = row.Venue
		}
		if combined.City == "" {
			combined.City = row.City
		}
		if combined.State == "" {
			combined.State = row.State
		}

		combined.Warnings = append(combined.Warnings, row.Warnings...)
	}

	combined.Notes = strings.Join(notes, combinedNotesSeparator)
	combined.Warnings = append(combined.Warnings,
		fmt.Sprintf("combined from rows %s", strings.Join(indexStrs, ", ")))

	return combined
}
