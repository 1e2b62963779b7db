// Package undo handles the batch reversal command
package undo

import (
	"context"
	"fmt"

	"gigbook/gig-import/cmd/root"
	"gigbook/gig-import/internal/logging"
	"gigbook/gig-import/pkg/gigimport"

	"github.com/spf13/cobra"
)

var batchID string

// Cmd represents the undo command
var Cmd = &cobra.Command{
	Use:   "undo",
	Short: "Reverse a committed import batch",
	Long: `Undo deletes every record a batch imported and every payer the batch
created that has no remaining records, then removes the batch itself.
Undoing an already-undone batch reports zero deletions.

Example:
  gig-import undo --batch 4f7c2d`,
	RunE: undoFunc,
}

func init() {
	Cmd.Flags().StringVar(&batchID, "batch", "", "Id of the batch to reverse")
	_ = Cmd.MarkFlagRequired("batch")
}

func undoFunc(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	s, err := root.OpenStore()
	if err != nil {
		return err
	}

	imp := gigimport.NewImporter(s, logging.NewLogrusAdapterFromLogger(root.Log))
	result, err := imp.Undo(ctx, root.SharedFlags.User, batchID)
	if err != nil {
		return fmt.Errorf("undo failed: %w", err)
	}

	root.Log.Infof("Deleted %d gigs and %d payers for batch %s",
		result.GigsDeleted, result.PayersDeleted, batchID)
	return nil
}
