package importer

import (
	"testing"
	"time"

	"gigbook/gig-import/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dupDate(day int) time.Time {
	return time.Date(2026, time.January, day, 0, 0, 0, 0, time.UTC)
}

func validRow(index int, day int, payer string, gross string, title string) models.NormalizedRow {
	return models.NormalizedRow{
		RowIndex: index,
		Date:     dupDate(day),
		Payer:    payer,
		Gross:    decimal.RequireFromString(gross),
		Title:    title,
	}
}

func existingGig(id string, day int, payer string, gross string, title string) models.Gig {
	return models.Gig{
		ID:        id,
		PayerName: payer,
		Date:      dupDate(day),
		Gross:     decimal.RequireFromString(gross),
		Title:     title,
	}
}

func TestDetectDuplicatesHighConfidence(t *testing.T) {
	rows := []models.NormalizedRow{validRow(1, 15, "Blue Note", "850.00", "Evening Set")}
	existing := []models.Gig{existingGig("g1", 15, "Blue Note", "850.00", "Evening Set")}

	groups := DetectDuplicates(rows, existing)

	require.Len(t, groups, 1)
	assert.Equal(t, []int{1}, groups[0].RowIndexes)
	assert.Equal(t, "g1", groups[0].ExistingID)
	assert.Equal(t, models.DuplicateHigh, groups[0].Confidence)
	assert.Equal(t, "2026-01-15|blue note|850.00", groups[0].Key)
}

func TestDetectDuplicatesAmountWithinTolerance(t *testing.T) {
	rows := []models.NormalizedRow{validRow(1, 15, "Blue Note", "850.00", "")}
	existing := []models.Gig{existingGig("g1", 15, "Blue Note", "850.01", "")}

	groups := DetectDuplicates(rows, existing)

	require.Len(t, groups, 1)
	assert.Equal(t, models.DuplicateHigh, groups[0].Confidence)
}

func TestDetectDuplicatesTitleDisagreementDowngrades(t *testing.T) {
	rows := []models.NormalizedRow{validRow(1, 15, "Blue Note", "850.00", "Evening Set")}
	existing := []models.Gig{existingGig("g1", 15, "Blue Note", "850.00", "Matinee")}

	groups := DetectDuplicates(rows, existing)

	require.Len(t, groups, 1)
	assert.Equal(t, models.DuplicateMedium, groups[0].Confidence)
	// Amount still matched, so the key keeps it.
	assert.Equal(t, "2026-01-15|blue note|850.00", groups[0].Key)
}

func TestDetectDuplicatesMissingTitleStaysHigh(t *testing.T) {
	rows := []models.NormalizedRow{validRow(1, 15, "Blue Note", "850.00", "Evening Set")}
	existing := []models.Gig{existingGig("g1", 15, "Blue Note", "850.00", "")}

	groups := DetectDuplicates(rows, existing)

	require.Len(t, groups, 1)
	assert.Equal(t, models.DuplicateHigh, groups[0].Confidence)
}

func TestDetectDuplicatesAmountMismatch(t *testing.T) {
	rows := []models.NormalizedRow{validRow(1, 15, "Blue Note", "850.00", "")}
	existing := []models.Gig{existingGig("g1", 15, "Blue Note", "900.00", "")}

	groups := DetectDuplicates(rows, existing)

	require.Len(t, groups, 1)
	assert.Equal(t, models.DuplicateMedium, groups[0].Confidence)
	assert.Equal(t, "2026-01-15|blue note", groups[0].Key)
}

func TestDetectDuplicatesPayerComparisonIsLenient(t *testing.T) {
	rows := []models.NormalizedRow{validRow(1, 15, "  blue note ", "850.00", "")}
	existing := []models.Gig{existingGig("g1", 15, "Blue Note", "850.00", "")}

	groups := DetectDuplicates(rows, existing)

	require.Len(t, groups, 1)
	assert.Equal(t, models.DuplicateHigh, groups[0].Confidence)
}

func TestDetectDuplicatesFirstMatchWins(t *testing.T) {
	rows := []models.NormalizedRow{validRow(1, 15, "Blue Note", "850.00", "")}
	existing := []models.Gig{
		existingGig("g1", 15, "Blue Note", "900.00", ""),
		existingGig("g2", 15, "Blue Note", "850.00", ""),
	}

	groups := DetectDuplicates(rows, existing)

	// Only one finding per row, against the first record that matched on
	// date and payer, even though the second would have scored higher.
	require.Len(t, groups, 1)
	assert.Equal(t, "g1", groups[0].ExistingID)
	assert.Equal(t, models.DuplicateMedium, groups[0].Confidence)
}

func TestDetectDuplicatesNoMatch(t *testing.T) {
	rows := []models.NormalizedRow{validRow(1, 15, "Blue Note", "850.00", "")}
	existing := []models.Gig{
		existingGig("g1", 16, "Blue Note", "850.00", ""),
		existingGig("g2", 15, "Red Room Lounge", "850.00", ""),
	}

	assert.Empty(t, DetectDuplicates(rows, existing))
}

func TestDetectDuplicatesSkipsInvalidRows(t *testing.T) {
	bad := validRow(1, 15, "Blue Note", "850.00", "")
	bad.Errors = []string{"date: missing required value"}
	good := validRow(2, 15, "Blue Note", "850.00", "")

	existing := []models.Gig{existingGig("g1", 15, "Blue Note", "850.00", "")}

	groups := DetectDuplicates([]models.NormalizedRow{bad, good}, existing)

	require.Len(t, groups, 1)
	assert.Equal(t, []int{2}, groups[0].RowIndexes)
}

func TestDetectDuplicatesEmptyExisting(t *testing.T) {
	rows := []models.NormalizedRow{validRow(1, 15, "Blue Note", "850.00", "")}
	assert.Empty(t, DetectDuplicates(rows, nil))
}
