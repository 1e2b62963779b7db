package importer

import (
	"strings"

	"gigbook/gig-import/internal/models"
)

// headerSynonyms maps each canonical field to the header spellings it is
// recognized under. Matching is case-insensitive on the trimmed header.
var headerSynonyms = map[models.Field][]string{
	models.FieldDate:          {"date", "gig date", "event date", "performance date", "show date"},
	models.FieldPayer:         {"payer", "client", "band", "employer", "paid by", "contractor"},
	models.FieldGross:         {"gross", "amount", "total", "gross pay", "pay"},
	models.FieldNetTotal:      {"net", "net total", "net pay", "take home"},
	models.FieldTitle:         {"title", "gig", "event", "description", "show", "name"},
	models.FieldTips:          {"tips", "tip"},
	models.FieldFees:          {"fees", "fee", "commission"},
	models.FieldPerDiem:       {"per diem", "perdiem"},
	models.FieldOtherIncome:   {"other income", "other"},
	models.FieldTaxesWithheld: {"taxes withheld", "tax withheld", "withholding", "taxes"},
	models.FieldPaymentMethod: {"payment method", "payment type", "method", "paid via"},
	models.FieldPaid:          {"paid", "is paid", "payment received"},
	models.FieldVenue:         {"venue", "location"},
	models.FieldCity:          {"city", "town"},
	models.FieldState:         {"state", "province"},
	models.FieldNotes:         {"notes", "note", "memo", "comments"},
}

// DetectColumns proposes a ColumnMapping for the given headers. For each
// canonical field the first header matching one of its synonyms wins; a
// header claimed by one field is not offered to another. Headers that match
// nothing are ignored.
func DetectColumns(headers []string) models.ColumnMapping {
	mapping := models.ColumnMapping{}
	claimed := make(map[string]bool)

	for _, field := range models.AllFields {
		for _, header := range headers {
			if claimed[header] {
				continue
			}
			normalized := strings.ToLower(strings.TrimSpace(header))
			for _, synonym := range headerSynonyms[field] {
				if normalized == synonym {
					mapping[field] = header
					claimed[header] = true
					break
				}
			}
			if mapping[field] != "" {
				break
			}
		}
	}

	return mapping
}
