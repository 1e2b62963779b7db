// Package commit handles the batch import command
package commit

import (
	"context"
	"fmt"

	"gigbook/gig-import/cmd/root"
	"gigbook/gig-import/internal/common"
	"gigbook/gig-import/internal/currencyutils"
	"gigbook/gig-import/internal/logging"
	"gigbook/gig-import/internal/models"
	"gigbook/gig-import/internal/validation"
	"gigbook/gig-import/pkg/gigimport"

	"github.com/spf13/cobra"
)

var (
	combine        bool
	skipDuplicates bool
)

// Cmd represents the commit command
var Cmd = &cobra.Command{
	Use:   "commit",
	Short: "Import a CSV file as one undoable batch",
	Long: `Commit runs the full pipeline on a CSV file and persists the result
as a single batch: new payers are created, duplicate rows are skipped when
enabled, and every persisted record is tagged with the batch id so the whole
import can be undone later.

Example:
  gig-import commit -i gigs.csv --combine`,
	RunE: commitFunc,
}

func init() {
	Cmd.Flags().BoolVar(&combine, "combine", false, "Combine rows that describe the same event")
	Cmd.Flags().BoolVar(&skipDuplicates, "skip-duplicates", true, "Skip rows already present in the store")
}

func commitFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("no input file given, use -i")
	}
	if err := validation.IsValidInputFile(root.SharedFlags.Input); err != nil {
		return err
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
	rows := gigimport.NormalizeRows(rawRows, mapping)

	existingPayers, err := s.ListPayers(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading existing payers: %w", err)
	}

	matches := gigimport.MatchPayers(gigimport.DistinctPayerNames(rows), existingPayers)
	combined := gigimport.CombineRows(rows, combine)

	imp := gigimport.NewImporter(s, logging.NewLogrusAdapterFromLogger(root.Log))
	result, err := imp.Commit(ctx, userID, combined, matches, gigimport.CommitOptions{
		Combined:       combine,
		SkipDuplicates: skipDuplicates,
	})
	if err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}

	printResult(result)
	return nil
}

func printResult(result models.BatchImportResult) {
	root.Log.Infof("Batch %s committed", result.BatchID)
	root.Log.Infof("Imported: %d, skipped: %d, errored: %d, new payers: %d",
		result.Summary.Imported, result.Summary.Skipped, result.Summary.Errored, result.Summary.NewPayers)
	root.Log.Infof("Totals: gross %s, tips %s, fees %s",
		currencyutils.FormatAmount(result.Summary.GrossTotal),
		currencyutils.FormatAmount(result.Summary.TipsTotal),
		currencyutils.FormatAmount(result.Summary.FeesTotal))

	for _, row := range result.Rows {
		if row.Status == models.StatusError {
			root.Log.Warnf("Rows %v: %s", row.RowIndexes, row.Error)
		}
	}
}
