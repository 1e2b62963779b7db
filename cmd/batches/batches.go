// Package batches lists committed import batches
package batches

import (
	"context"

	"gigbook/gig-import/cmd/root"
	"gigbook/gig-import/internal/currencyutils"

	"github.com/spf13/cobra"
)

// Cmd represents the batches command
var Cmd = &cobra.Command{
	Use:   "batches",
	Short: "List committed import batches",
	RunE:  batchesFunc,
}

func batchesFunc(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, err := root.OpenStore()
	if err != nil {
		return err
	}

	batches, err := s.ListBatches(ctx, root.SharedFlags.User)
	if err != nil {
		return err
	}

	if len(batches) == 0 {
		root.Log.Info("No import batches found")
		return nil
	}

	for _, b := range batches {
		root.Log.Infof("%s  %s  rows=%d imported=%d skipped=%d errored=%d gross=%s",
			b.ID, b.CreatedAt.Format("2006-01-02 15:04"), b.RowCount,
			b.ImportedCount, b.SkippedCount, b.ErrorCount,
			currencyutils.FormatAmount(b.GrossTotal))
	}
	return nil
}
