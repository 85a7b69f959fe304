// Package currencyutils normalizes the amount strings found in bank exports.
package currencyutils

import (
	"regexp"
	"strings"
)

var currencyPattern = regexp.MustCompile(`(?i)USD|CHF|EUR|GBP|[€$£¥\s']`)

// StandardizeAmount converts an amount string to a form decimal.NewFromString
// accepts. Currency codes, symbols, blanks and apostrophes are removed.
// Handles patterns like "CHF 1'234.56", "€1.234,56", "$1,234.56" and "1234,56".
// Blank input yields "".
func StandardizeAmount(amountStr string) string {
	amount := currencyPattern.ReplaceAllString(amountStr, "")

	hasComma := strings.Contains(amount, ",")
	hasDot := strings.Contains(amount, ".")
	switch {
	case hasComma && hasDot:
		if strings.LastIndex(amount, ".") < strings.LastIndex(amount, ",") {
			// 1.234,56
			amount = strings.ReplaceAll(amount, ".", "")
			amount = strings.ReplaceAll(amount, ",", ".")
		} else {
			// 1,234.56
			amount = strings.ReplaceAll(amount, ",", "")
		}
	case hasComma:
		parts := strings.Split(amount, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			amount = strings.Replace(amount, ",", ".", 1)
		} else {
			amount = strings.ReplaceAll(amount, ",", "")
		}
	}

	return amount
}
