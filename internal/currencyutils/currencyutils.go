// Package currencyutils parses and formats monetary amounts from freeform
// import cells.
package currencyutils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a string like "$1,234.56" into a decimal value.
// It returns zero for an empty string; the caller decides whether an empty
// amount is acceptable for the field in question.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if strings.TrimSpace(amountStr) == "" {
		return decimal.Zero, nil
	}

	standardized := StandardizeAmount(amountStr)

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount strips currency symbols, thousands separators, and
// surrounding whitespace so decimal.NewFromString can parse the result.
// Handles patterns like "$1,234.56", "€ 850", "1,200".
func StandardizeAmount(amountStr string) string {
	amountStr = strings.TrimSpace(amountStr)

	var b strings.Builder
	for _, r := range amountStr {
		switch r {
		case '$', '€', '£', '¥', ',', ' ':
			// currency symbols and thousands separators
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// FormatAmount renders a decimal with two places and a leading dollar sign.
func FormatAmount(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
