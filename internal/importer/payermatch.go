package importer

import (
	"strings"

	"gigbook/gig-import/internal/models"

	"github.com/agnivade/levenshtein"
	"github.com/sirupsen/logrus"
)

// fuzzyMatchThreshold is the minimum normalized edit-distance similarity a
// fuzzy payer candidate must exceed to be accepted.
const fuzzyMatchThreshold = 0.8

// DistinctPayerNames returns the distinct payer names appearing in valid
// rows, in first-encountered order. Distinctness is case-insensitive on the
// trimmed name; the first spelling seen is the one reported.
func DistinctPayerNames(rows []models.NormalizedRow) []string {
	seen := make(map[string]bool)
	var names []string
	for _, row := range rows {
		if !row.IsValid() || row.Payer == "" {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(row.Payer))
		if !seen[key] {
			seen[key] = true
			names = append(names, strings.TrimSpace(row.Payer))
		}
	}
	return names
}

// MatchPayers resolves each distinct payer name against the existing payers.
// Per name: a case-insensitive, whitespace-trimmed exact match wins first;
// otherwise the best fuzzy candidate is accepted if its similarity exceeds
// the threshold, ties broken by existing-list order; otherwise the name is
// marked for creation. Pure function: no I/O.
func MatchPayers(names []string, existing []models.Payer) []models.PayerMatch {
	matches := make([]models.PayerMatch, 0, len(names))
	for _, name := range names {
		matches = append(matches, matchPayer(name, existing))
	}

	log.WithFields(logrus.Fields{"names": len(names), "existing": len(existing)}).
		Debug("Matched payer names")
	return matches
}

func matchPayer(name string, existing []models.Payer) models.PayerMatch {
	trimmed := strings.TrimSpace(name)

	for _, payer := range existing {
		if strings.EqualFold(trimmed, strings.TrimSpace(payer.Name)) {
			return models.PayerMatch{
				SourceName:   name,
				ExistingID:   payer.ID,
				ExistingName: payer.Name,
				Confidence:   models.ConfidenceExact,
				Action:       models.ActionUseExisting,
				Score:        1.0,
			}
		}
	}

	var best *models.Payer
	bestScore := 0.0
	for i := range existing {
		score := similarity(trimmed, existing[i].Name)
		// Strict greater-than keeps the first-encountered candidate on ties.
		if score > bestScore {
			bestScore = score
			best = &existing[i]
		}
	}

	if best != nil && bestScore > fuzzyMatchThreshold {
		return models.PayerMatch{
			SourceName:   name,
			ExistingID:   best.ID,
			ExistingName: best.Name,
			Confidence:   models.ConfidenceFuzzy,
			Action:       models.ActionUseExisting,
			Score:        bestScore,
		}
	}

	return models.PayerMatch{
		SourceName: name,
		Confidence: models.ConfidenceNone,
		Action:     models.ActionCreateNew,
	}
}

// similarity is the normalized edit-distance score 1 - d/max(len), computed
// case-insensitively on the full strings. Word order is not considered.
func similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == "" && b == "" {
		return 1.0
	}

	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 0.0
	}

	distance := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(distance)/float64(longest)
}
