// Package store provides persistence for payers, gigs, and import batches.
// All operations are scoped to a user id; callers never see another user's
// records.
package store

import (
	"context"

	"gigbook/gig-import/internal/models"
)

// Store is the record store the import pipeline commits against.
type Store interface {
	// CreatePayer persists a new payer and returns it with its assigned id.
	CreatePayer(ctx context.Context, payer models.Payer) (models.Payer, error)
	// ListPayers returns all payers belonging to the user.
	ListPayers(ctx context.Context, userID string) ([]models.Payer, error)
	// ListPayersByBatch returns payers created by the given import batch.
	ListPayersByBatch(ctx context.Context, userID, batchID string) ([]models.Payer, error)
	// DeletePayer removes a payer by id.
	DeletePayer(ctx context.Context, userID, payerID string) error
	// CountGigsByPayer returns the number of gigs referencing a payer.
	CountGigsByPayer(ctx context.Context, userID, payerID string) (int, error)

	// CreateGig persists a new gig and returns it with its assigned id.
	CreateGig(ctx context.Context, gig models.Gig) (models.Gig, error)
	// ListGigs returns all gigs belonging to the user.
	ListGigs(ctx context.Context, userID string) ([]models.Gig, error)
	// ListGigsByBatch returns gigs tagged with the given import batch id.
	ListGigsByBatch(ctx context.Context, userID, batchID string) ([]models.Gig, error)
	// DeleteGig removes a gig by id.
	DeleteGig(ctx context.Context, userID, gigID string) error

	// CreateBatch persists a new import batch and returns it with its id.
	CreateBatch(ctx context.Context, batch models.ImportBatch) (models.ImportBatch, error)
	// UpdateBatch replaces an existing batch record.
	UpdateBatch(ctx context.Context, batch models.ImportBatch) error
	// GetBatch returns one batch by id.
	GetBatch(ctx context.Context, userID, batchID string) (models.ImportBatch, error)
	// ListBatches returns all batches belonging to the user.
	ListBatches(ctx context.Context, userID string) ([]models.ImportBatch, error)
	// DeleteBatch removes a batch record by id.
	DeleteBatch(ctx context.Context, userID, batchID string) error
}
