package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name       string
		amountStr  string
		expectedOk bool
		expected   string
	}{
		{"Plain integer", "850", true, "850"},
		{"Plain decimal", "850.50", true, "850.5"},
		{"Dollar sign", "$850", true, "850"},
		{"Dollar and thousands", "$1,234.56", true, "1234.56"},
		{"Thousands only", "1,200", true, "1200"},
		{"Euro with space", "€ 850", true, "850"},
		{"Pound sign", "£75.25", true, "75.25"},
		{"Negative passes through", "-50", true, "-50"},
		{"Empty is zero", "", true, "0"},
		{"Whitespace only is zero", "   ", true, "0"},
		{"Not a number", "free", false, ""},
		{"Double decimal point", "1.2.3", false, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := ParseAmount(tc.amountStr)

			if tc.expectedOk {
				assert.NoError(t, err)
				expected, _ := decimal.NewFromString(tc.expected)
				assert.True(t, expected.Equal(amount),
					"expected %s, got %s", tc.expected, amount.String())
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestStandardizeAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"$1,234.56", "1234.56"},
		{"€850", "850"},
		{" 1 200 ", "1200"},
		{"850.50", "850.50"},
		{"-50", "-50"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, StandardizeAmount(tc.input))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$850.00", FormatAmount(decimal.NewFromInt(850)))
	assert.Equal(t, "$1234.56", FormatAmount(decimal.RequireFromString("1234.56")))
	assert.Equal(t, "$0.00", FormatAmount(decimal.Zero))
}
