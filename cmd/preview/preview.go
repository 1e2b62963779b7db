// Package preview handles the dry-run import preview command
package preview

import (
	"context"
	"fmt"
	"strings"

	"gigbook/gig-import/cmd/root"
	"gigbook/gig-import/internal/common"
	"gigbook/gig-import/internal/currencyutils"
	"gigbook/gig-import/internal/dateutils"
	"gigbook/gig-import/internal/models"
	"gigbook/gig-import/internal/validation"
	"gigbook/gig-import/pkg/gigimport"

	"github.com/spf13/cobra"
)

// Cmd represents the preview command
var Cmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview an import without touching the store",
	Long: `Preview runs the full read-only pipeline on a CSV file: column
auto-detection, normalization, payer matching, and duplicate detection.
Nothing is persisted. With -o, a per-row report CSV is written.

Example:
  gig-import preview -i gigs.csv -o report.csv`,
	RunE: previewFunc,
}

func previewFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("no input file given, use -i")
	}
	if err := validation.IsValidInputFile(root.SharedFlags.Input); err != nil {
		return err
	}
	if root.SharedFlags.Output != "" {
		if err := validation.IsValidReportPath(root.SharedFlags.Output); err != nil {
			return err
		}
	}

	ctx := context.Background()
	userID := root.SharedFlags.User

	s, err := root.OpenStore()
	if err != nil {
		return err
	}

	headers, rawRows, err := common.ReadRawRows(root.SharedFlags.Input)
	if err != nil {
		return err
	}

	mapping := gigimport.DetectColumns(headers)
	root.Log.WithField("mapped_columns", len(mapping)).Info("Detected column mapping")

	rows := gigimport.NormalizeRows(rawRows, mapping)

	existingPayers, err := s.ListPayers(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading existing payers: %w", err)
	}
	existingGigs, err := s.ListGigs(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading existing gigs: %w", err)
	}

	matches := gigimport.MatchPayers(gigimport.DistinctPayerNames(rows), existingPayers)
	duplicates := gigimport.DetectDuplicates(rows, existingGigs)

	printSummary(rows, matches, duplicates)

	if root.SharedFlags.Output != "" {
		report := buildReport(rows, matches, duplicates)
		if err := common.WritePreviewReport(root.SharedFlags.Output, report); err != nil {
			return err
		}
	}

	return nil
}

func printSummary(rows []models.NormalizedRow, matches []models.PayerMatch, duplicates []models.DuplicateGroup) {
	valid, errored := 0, 0
	for _, row := range rows {
		if row.IsValid() {
			valid++
		} else {
			errored++
		}
	}

	root.Log.Infof("Rows: %d total, %d valid, %d with errors", len(rows), valid, errored)

	for _, match := range matches {
		switch match.Confidence {
		case models.ConfidenceExact:
			root.Log.Infof("Payer %q: existing (%s)", match.SourceName, match.ExistingName)
		case models.ConfidenceFuzzy:
			root.Log.Infof("Payer %q: close match to %q (%.2f)", match.SourceName, match.ExistingName, match.Score)
		default:
			root.Log.Infof("Payer %q: will be created", match.SourceName)
		}
	}

	for _, dup := range duplicates {
		root.Log.Warnf("Row %v looks like existing record %s (%s confidence)",
			dup.RowIndexes, dup.ExistingID, dup.Confidence)
	}
}

func buildReport(rows []models.NormalizedRow, matches []models.PayerMatch, duplicates []models.DuplicateGroup) []common.PreviewRow {
	matchByPayer := make(map[string]models.PayerMatch, len(matches))
	for _, m := range matches {
		matchByPayer[strings.ToLower(strings.TrimSpace(m.SourceName))] = m
	}

	dupByRow := make(map[int]models.DuplicateGroup)
	for _, d := range duplicates {
		for _, idx := range d.RowIndexes {
			if _, ok := dupByRow[idx]; !ok {
				dupByRow[idx] = d
			}
		}
	}

	report := make([]common.PreviewRow, 0, len(rows))
	for _, row := range rows {
		pr := common.PreviewRow{
			RowIndex: row.RowIndex,
			Date:     dateutils.ToISODate(row.Date),
			Payer:    row.Payer,
			Gross:    currencyutils.FormatAmount(row.Gross),
			Title:    row.Title,
			Errors:   strings.Join(row.Errors, "; "),
			Warnings: strings.Join(row.Warnings, "; "),
		}

		if m, ok := matchByPayer[strings.ToLower(strings.TrimSpace(row.Payer))]; ok {
			pr.PayerMatch = string(m.Confidence)
		}
		if d, ok := dupByRow[row.RowIndex]; ok {
			pr.Duplicate = string(d.Confidence)
		}

		report = append(report, pr)
	}
	return report
}
