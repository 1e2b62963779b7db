package importer

import (
	"fmt"
	"strings"

	"gigbook/gig-import/internal/dateutils"
	"gigbook/gig-import/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// amountTolerance is the absolute difference within which two amounts are
// considered the same for duplicate detection.
var amountTolerance = decimal.NewFromFloat(0.01)

// DetectDuplicates flags normalized rows that likely already exist in the
// store. It runs before combination, against the original per-line amounts.
// Per row the existing records are scanned in order and the first record
// matching on date and payer produces the sole finding for that row:
//
//   - amount within tolerance: high confidence, downgraded to medium when
//     both titles are present and disagree;
//   - amount differing: medium confidence with no amount in the key.
func DetectDuplicates(rows []models.NormalizedRow, existing []models.Gig) []models.DuplicateGroup {
	var groups []models.DuplicateGroup

	for _, row := range rows {
		if !row.IsValid() {
			continue
		}

		for _, gig := range existing {
			if !dateutils.SameDay(row.Date, gig.Date) {
				continue
			}
			if !strings.EqualFold(strings.TrimSpace(row.Payer), strings.TrimSpace(gig.PayerName)) {
				continue
			}

			groups = append(groups, buildFinding(row, gig))
			break // first matching record wins for this row
		}
	}

	log.WithFields(logrus.Fields{"rows": len(rows), "findings": len(groups)}).
		Debug("Detected duplicate candidates")
	return groups
}

func buildFinding(row models.NormalizedRow, gig models.Gig) models.DuplicateGroup {
	payerKey := strings.ToLower(strings.TrimSpace(row.Payer))
	dateKey := dateutils.ToISODate(row.Date)

	if row.Gross.Sub(gig.Gross).Abs().LessThanOrEqual(amountTolerance) {
		confidence := models.DuplicateHigh
		if row.Title != "" && gig.Title != "" && !strings.EqualFold(row.Title, gig.Title) {
			confidence = models.DuplicateMedium
		}
		return models.DuplicateGroup{
			RowIndexes: []int{row.RowIndex},
			ExistingID: gig.ID,
			Key:        fmt.Sprintf("%s|%s|%s", dateKey, payerKey, row.Gross.StringFixed(2)),
			Confidence: confidence,
		}
	}

	// Date and payer match but the amount does not: weaker finding, no
	// amount in the key.
	return models.DuplicateGroup{
		RowIndexes: []int{row.RowIndex},
		ExistingID: gig.ID,
		Key:        fmt.Sprintf("%s|%s", dateKey, payerKey),
		Confidence: models.DuplicateMedium,
	}
}
