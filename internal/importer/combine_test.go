package importer

import (
	"testing"

	"gigbook/gig-import/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineRowsDisabledIsPassthrough(t *testing.T) {
	rows := []models.NormalizedRow{
		validRow(1, 15, "Blue Note", "850.00", "Evening Set"),
		validRow(2, 15, "Blue Note", "300.00", "Evening Set"),
	}

	out := CombineRows(rows, false)

	require.Len(t, out, 2)
	for i, combined := range out {
		assert.False(t, combined.IsCombined)
		assert.Equal(t, []int{i + 1}, combined.CombinedFromRows)
		assert.True(t, combined.Gross.Equal(rows[i].Gross))
	}
}

func TestCombineRowsMergesSameEvent(t *testing.T) {
	first := validRow(1, 15, "Blue Note", "850.00", "Evening Set")
	first.Notes = "first set"
	second := validRow(2, 15, "Blue Note", "300.00", "Evening Set")
	second.Notes = "second set"
	second.Tips = decimal.RequireFromString("40.00")

	out := CombineRows([]models.NormalizedRow{first, second}, true)

	require.Len(t, out, 1)
	combined := out[0]
	assert.True(t, combined.IsCombined)
	assert.Equal(t, []int{1, 2}, combined.CombinedFromRows)
	assert.Equal(t, 1, combined.RowIndex)
	assert.Equal(t, "1150", combined.Gross.String())
	assert.Equal(t, "40", combined.Tips.String())
	assert.Equal(t, "first set | second set", combined.Notes)
	assert.Contains(t, combined.Warnings, "combined from rows 1, 2")
}

func TestCombineRowsThreeWayMerge(t *testing.T) {
	rows := []models.NormalizedRow{
		validRow(1, 15, "Blue Note", "100.00", ""),
		validRow(2, 15, "Blue Note", "200.00", ""),
		validRow(3, 15, "Blue Note", "300.00", ""),
	}

	out := CombineRows(rows, true)

	require.Len(t, out, 1)
	assert.Equal(t, []int{1, 2, 3}, out[0].CombinedFromRows)
	assert.Equal(t, "600", out[0].Gross.String())
}

func TestCombineRowsAnchorTitlePolicy(t *testing.T) {
	// The untitled middle row joins the first anchor; it cannot bridge the
	// two titled rows into one group because matching is against the anchor
	// only.
	rows := []models.NormalizedRow{
		validRow(1, 15, "Blue Note", "100.00", "Early Show"),
		validRow(2, 15, "Blue Note", "200.00", ""),
		validRow(3, 15, "Blue Note", "300.00", "Late Show"),
	}

	out := CombineRows(rows, true)

	require.Len(t, out, 2)
	assert.Equal(t, []int{1, 2}, out[0].CombinedFromRows)
	assert.Equal(t, "Early Show", out[0].Title)
	assert.Equal(t, []int{3}, out[1].CombinedFromRows)
	assert.False(t, out[1].IsCombined)
}

func TestCombineRowsDifferentDatesOrPayersStaySeparate(t *testing.T) {
	rows := []models.NormalizedRow{
		validRow(1, 15, "Blue Note", "100.00", ""),
		validRow(2, 16, "Blue Note", "200.00", ""),
		validRow(3, 15, "Red Room Lounge", "300.00", ""),
	}

	out := CombineRows(rows, true)

	require.Len(t, out, 3)
	for _, combined := range out {
		assert.False(t, combined.IsCombined)
	}
}

func TestCombineRowsFillsMissingStrings(t *testing.T) {
	first := validRow(1, 15, "Blue Note", "100.00", "")
	second := validRow(2, 15, "Blue Note", "200.00", "Evening Set")
	second.Venue = "Main Stage"
	second.City = "Chicago"

	out := CombineRows([]models.NormalizedRow{first, second}, true)

	require.Len(t, out, 1)
	assert.Equal(t, "Evening Set", out[0].Title)
	assert.Equal(t, "Main Stage", out[0].Venue)
	assert.Equal(t, "Chicago", out[0].City)
}

func TestCombineRowsInvalidRowsPassThrough(t *testing.T) {
	bad := validRow(2, 15, "Blue Note", "0", "")
	bad.Errors = []string{"gross: invalid amount"}

	rows := []models.NormalizedRow{
		validRow(1, 15, "Blue Note", "100.00", ""),
		bad,
		validRow(3, 15, "Blue Note", "200.00", ""),
	}

	out := CombineRows(rows, true)

	require.Len(t, out, 2)
	assert.Equal(t, []int{1, 3}, out[0].CombinedFromRows)
	assert.Equal(t, []int{2}, out[1].CombinedFromRows)
	assert.False(t, out[1].IsValid())
}

func TestCombineRowsDoesNotMutateAnchorWarnings(t *testing.T) {
	first := validRow(1, 15, "Blue Note", "100.00", "")
	first.Warnings = []string{"net total used as gross amount"}
	second := validRow(2, 15, "Blue Note", "200.00", "")

	out := CombineRows([]models.NormalizedRow{first, second}, true)

	require.Len(t, out, 1)
	assert.Len(t, out[0].Warnings, 2)
	assert.Equal(t, []string{"net total used as gross amount"}, first.Warnings)
}

func TestCombineRowsEmptyInput(t *testing.T) {
	assert.Empty(t, CombineRows(nil, true))
	assert.Empty(t, CombineRows(nil, false))
}
