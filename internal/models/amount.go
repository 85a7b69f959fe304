package models

import (
	"fmt"

	"fjacquet/txlabel/internal/currencyutils"

	"github.com/shopspring/decimal"
)

// Amount is an optional decimal value. An empty CSV cell yields an Amount with
// Valid set to false.
type Amount struct {
	Value decimal.Decimal
	Valid bool
}

// NewAmount returns a valid Amount.
func NewAmount(value decimal.Decimal) Amount {
	return Amount{Value: value, Valid: true}
}

// NewAmountFromString parses s into an Amount. Blank input yields an empty Amount.
func NewAmountFromString(s string) (Amount, error) {
	cleaned := currencyutils.StandardizeAmount(s)
	if cleaned == "" {
		return Amount{}, nil
	}
	dec, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount string '%s': %w", s, err)
	}
	return NewAmount(dec), nil
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (a *Amount) UnmarshalCSV(s string) error {
	parsed, err := NewAmountFromString(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalCSV implements gocsv.TypeMarshaller. Amounts are written with two decimals.
func (a Amount) MarshalCSV() (string, error) {
	return a.String(), nil
}

// String returns the amount with two decimals, or "" when unset.
func (a Amount) String() string {
	if !a.Valid {
		return ""
	}
	return a.Value.StringFixed(2)
}
