package store

import (
	"context"
	"fmt"

	"gigbook/gig-import/internal/models"
	"gigbook/gig-import/internal/parsererror"
)

// MockStore is an in-memory Store implementation for testing. Error fields
// let tests inject failures per operation; CreateGigErrOnCall fails only the
// Nth gig insert so best-effort row handling can be exercised.
type MockStore struct {
	Payers  []models.Payer
	Gigs    []models.Gig
	Batches []models.ImportBatch

	nextID int

	CreatePayerErr      error
	CreateGigErr        error
	CreateGigErrOnCall  int // 1-based call number to fail; 0 disables
	createGigCalls      int
	CreateBatchErr      error
	UpdateBatchErr      error
	DeleteGigErr        error
	DeletePayerErr      error
	DeleteBatchErr      error
	ListGigsErr         error
	CountGigsByPayerErr error
}

func (m *MockStore) newID(prefix string) string {
	m.nextID++
	return fmt.Sprintf("%s-%d", prefix, m.nextID)
}

// CreatePayer persists a new payer and returns it with its assigned id.
func (m *MockStore) CreatePayer(ctx context.Context, payer models.Payer) (models.Payer, error) {
	if m.CreatePayerErr != nil {
		return models.Payer{}, m.CreatePayerErr
	}
	payer.ID = m.newID("payer")
	m.Payers = append(m.Payers, payer)
	return payer, nil
}

// ListPayers returns all payers belonging to the user.
func (m *MockStore) ListPayers(ctx context.Context, userID string) ([]models.Payer, error) {
	var out []models.Payer
	for _, p := range m.Payers {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListPayersByBatch returns payers created by the given import batch.
func (m *MockStore) ListPayersByBatch(ctx context.Context, userID, batchID string) ([]models.Payer, error) {
	var out []models.Payer
	for _, p := range m.Payers {
		if p.UserID == userID && p.BatchTag == batchID {
			out = append(out, p)
		}
	}
	return out, nil
}

// DeletePayer removes a payer by id.
func (m *MockStore) DeletePayer(ctx context.Context, userID, payerID string) error {
	if m.DeletePayerErr != nil {
		return m.DeletePayerErr
	}
	for i, p := range m.Payers {
		if p.UserID == userID && p.ID == payerID {
			m.Payers = append(m.Payers[:i], m.Payers[i+1:]...)
			return nil
		}
	}
	return &parsererror.NotFoundError{Entity: "payer", ID: payerID}
}

// CountGigsByPayer returns the number of gigs referencing a payer.
func (m *MockStore) CountGigsByPayer(ctx context.Context, userID, payerID string) (int, error) {
	if m.CountGigsByPayerErr != nil {
		return 0, m.CountGigsByPayerErr
	}
	count := 0
	for _, g := range m.Gigs {
		if g.UserID == userID && g.PayerID == payerID {
			count++
		}
	}
	return count, nil
}

// CreateGig persists a new gig and returns it with its assigned id.
func (m *MockStore) CreateGig(ctx context.Context, gig models.Gig) (models.Gig, error) {
	m.createGigCalls++
	if m.CreateGigErr != nil {
		return models.Gig{}, m.CreateGigErr
	}
	if m.CreateGigErrOnCall > 0 && m.createGigCalls == m.CreateGigErrOnCall {
		return models.Gig{}, fmt.Errorf("injected gig insert failure on call %d", m.createGigCalls)
	}
	gig.ID = m.newID("gig")
	m.Gigs = append(m.Gigs, gig)
	return gig, nil
}

// ListGigs returns all gigs belonging to the user.
func (m *MockStore) ListGigs(ctx context.Context, userID string) ([]models.Gig, error) {
	if m.ListGigsErr != nil {
		return nil, m.ListGigsErr
	}
	var out []models.Gig
	for _, g := range m.Gigs {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

// ListGigsByBatch returns gigs tagged with the given import batch id.
func (m *MockStore) ListGigsByBatch(ctx context.Context, userID, batchID string) ([]models.Gig, error) {
	var out []models.Gig
	for _, g := range m.Gigs {
		if g.UserID == userID && g.BatchTag == batchID {
			out = append(out, g)
		}
	}
	return out, nil
}

// DeleteGig removes a gig by id.
func (m *MockStore) DeleteGig(ctx context.Context, userID, gigID string) error {
	if m.DeleteGigErr != nil {
		return m.DeleteGigErr
	}
	for i, g := range m.Gigs {
		if g.UserID == userID && g.ID == gigID {
			m.Gigs = append(m.Gigs[:i], m.Gigs[i+1:]...)
			return nil
		}
	}
	return &parsererror.NotFoundError{Entity: "gig", ID: gigID}
}

// CreateBatch persists a new import batch and returns it with its id.
func (m *MockStore) CreateBatch(ctx context.Context, batch models.ImportBatch) (models.ImportBatch, error) {
	if m.CreateBatchErr != nil {
		return models.ImportBatch{}, m.CreateBatchErr
	}
	batch.ID = m.newID("batch")
	m.Batches = append(m.Batches, batch)
	return batch, nil
}

// UpdateBatch replaces an existing batch record.
func (m *MockStore) UpdateBatch(ctx context.Context, batch models.ImportBatch) error {
	if m.UpdateBatchErr != nil {
		return m.UpdateBatchErr
	}
	for i, b := range m.Batches {
		if b.UserID == batch.UserID && b.ID == batch.ID {
			m.Batches[i] = batch
			return nil
		}
	}
	return &parsererror.NotFoundError{Entity: "batch", ID: batch.ID}
}

// GetBatch returns one batch by id.
func (m *MockStore) GetBatch(ctx context.Context, userID, batchID string) (models.ImportBatch, error) {
	for _, b := range m.Batches {
		if b.UserID == userID && b.ID == batchID {
			return b, nil
		}
	}
	return models.ImportBatch{}, &parsererror.NotFoundError{Entity: "batch", ID: batchID}
}

// ListBatches returns all batches belonging to the user.
func (m *MockStore) ListBatches(ctx context.Context, userID string) ([]models.ImportBatch, error) {
	var out []models.ImportBatch
	for _, b := range m.Batches {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

// DeleteBatch removes a batch record by id.
func (m *MockStore) DeleteBatch(ctx context.Context, userID, batchID string) error {
	if m.DeleteBatchErr != nil {
		return m.DeleteBatchErr
	}
	for i, b := range m.Batches {
		if b.UserID == userID && b.ID == batchID {
			m.Batches = append(m.Batches[:i], m.Batches[i+1:]...)
			return nil
		}
	}
	return &parsererror.NotFoundError{Entity: "batch", ID: batchID}
}
