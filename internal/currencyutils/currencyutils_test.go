package currencyutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardizeAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "1234.56", expected: "1234.56"},
		{name: "blank", input: "  ", expected: ""},
		{name: "dollar with thousands", input: "$1,234.56", expected: "1234.56"},
		{name: "euro european format", input: "€1.234,56", expected: "1234.56"},
		{name: "swiss apostrophe", input: "CHF 1'234.56", expected: "1234.56"},
		{name: "currency code suffix", input: "42.10 USD", expected: "42.10"},
		{name: "comma decimal", input: "12,50", expected: "12.50"},
		{name: "comma thousands", input: "1,250", expected: "1250"},
		{name: "several comma thousands", input: "1,250,000", expected: "1250000"},
		{name: "space thousands", input: "1 234,56", expected: "1234.56"},
		{name: "negative", input: "-3.20", expected: "-3.20"},
		{name: "garbage passes through", input: "abc", expected: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StandardizeAmount(tt.input))
		})
	}
}
