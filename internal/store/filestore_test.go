package store

import (
	"context"
	"testing"
	"time"

	"gigbook/gig-import/internal/models"
	"gigbook/gig-import/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestFileStorePayerLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreatePayer(ctx, models.Payer{UserID: "u1", Name: "Blue Note"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	payers, err := s.ListPayers(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, payers, 1)
	assert.Equal(t, "Blue Note", payers[0].Name)

	require.NoError(t, s.DeletePayer(ctx, "u1", created.ID))

	payers, err = s.ListPayers(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, payers)
}

func TestFileStoreUserScoping(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreatePayer(ctx, models.Payer{UserID: "u1", Name: "Blue Note"})
	require.NoError(t, err)
	other, err := s.CreatePayer(ctx, models.Payer{UserID: "u2", Name: "Red Room Lounge"})
	require.NoError(t, err)

	payers, err := s.ListPayers(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, payers, 1)
	assert.Equal(t, "Blue Note", payers[0].Name)

	// One user cannot delete another user's payer.
	err = s.DeletePayer(ctx, "u1", other.ID)
	var notFound *parsererror.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestFileStoreGigQueries(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	date := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	tagged, err := s.CreateGig(ctx, models.Gig{
		UserID:    "u1",
		PayerID:   "p1",
		PayerName: "Blue Note",
		Date:      date,
		Gross:     decimal.RequireFromString("850.00"),
		BatchTag:  "batch-1",
	})
	require.NoError(t, err)
	_, err = s.CreateGig(ctx, models.Gig{
		UserID:    "u1",
		PayerID:   "p1",
		PayerName: "Blue Note",
		Date:      date,
		Gross:     decimal.RequireFromString("300.00"),
	})
	require.NoError(t, err)

	byBatch, err := s.ListGigsByBatch(ctx, "u1", "batch-1")
	require.NoError(t, err)
	require.Len(t, byBatch, 1)
	assert.Equal(t, tagged.ID, byBatch[0].ID)

	count, err := s.CountGigsByPayer(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = s.CountGigsByPayer(ctx, "u1", "p2")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestFileStoreGigRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	date := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	created, err := s.CreateGig(ctx, models.Gig{
		UserID:    "u1",
		PayerID:   "p1",
		PayerName: "Blue Note",
		Date:      date,
		Gross:     decimal.RequireFromString("850.00"),
		Tips:      decimal.RequireFromString("40.00"),
		Title:     "Evening Set",
		Paid:      true,
	})
	require.NoError(t, err)

	gigs, err := s.ListGigs(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, gigs, 1)

	got := gigs[0]
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.Date.Equal(date))
	assert.True(t, got.Gross.Equal(decimal.RequireFromString("850.00")))
	assert.True(t, got.Tips.Equal(decimal.RequireFromString("40.00")))
	assert.Equal(t, "Evening Set", got.Title)
	assert.True(t, got.Paid)
}

func TestFileStoreBatchLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	batch, err := s.CreateBatch(ctx, models.ImportBatch{
		UserID:    "u1",
		CreatedAt: time.Now().UTC(),
		RowCount:  3,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, batch.ID)

	batch.ImportedCount = 2
	batch.ErrorCount = 1
	batch.GrossTotal = decimal.RequireFromString("1150.00")
	require.NoError(t, s.UpdateBatch(ctx, batch))

	got, err := s.GetBatch(ctx, "u1", batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ImportedCount)
	assert.Equal(t, 1, got.ErrorCount)
	assert.True(t, got.GrossTotal.Equal(decimal.RequireFromString("1150.00")))

	batches, err := s.ListBatches(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, batches, 1)

	require.NoError(t, s.DeleteBatch(ctx, "u1", batch.ID))

	_, err = s.GetBatch(ctx, "u1", batch.ID)
	var notFound *parsererror.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestFileStoreUpdateUnknownBatch(t *testing.T) {
	s := newTestStore(t)

	err := s.UpdateBatch(context.Background(), models.ImportBatch{ID: "nope", UserID: "u1"})
	var notFound *parsererror.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewFileStore(dir)
	require.NoError(t, err)
	created, err := first.CreatePayer(ctx, models.Payer{UserID: "u1", Name: "Blue Note"})
	require.NoError(t, err)

	second, err := NewFileStore(dir)
	require.NoError(t, err)
	payers, err := second.ListPayers(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, payers, 1)
	assert.Equal(t, created.ID, payers[0].ID)
}

func TestFileStoreEmptyDirectory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	payers, err := s.ListPayers(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, payers)

	gigs, err := s.ListGigs(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, gigs)

	batches, err := s.ListBatches(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, batches)
}
