// Package parsererror defines the typed errors returned when transaction files
// or rule databases cannot be read as expected.
package parsererror

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingColumns is matched by every MissingColumnsError.
	ErrMissingColumns = errors.New("missing required columns")
	// ErrIntegrity is matched by every IntegrityError.
	ErrIntegrity = errors.New("rule database integrity violation")
)

// ParseError represents an error while parsing a single value
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingColumnsError is returned when a transaction file lacks required columns.
// Columns lists every missing column, in the order they are required.
type MissingColumnsError struct {
	FilePath string
	Columns  []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("CSV file %s missing required columns: %s",
		e.FilePath, strings.Join(e.Columns, ", "))
}

func (e *MissingColumnsError) Is(target error) bool {
	return target == ErrMissingColumns
}

// IntegrityError reports a rule database whose parallel label sequences disagree in length.
type IntegrityError struct {
	Descriptions   int
	BusinessLabels int
	RetailerLabels int
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("rule database has mismatched list lengths: descriptions=%d business_labels=%d retailer_labels=%d",
		e.Descriptions, e.BusinessLabels, e.RetailerLabels)
}

func (e *IntegrityError) Is(target error) bool {
	return target == ErrIntegrity
}

// InvalidFormatError represents an error where the input does not conform
// to the expected format.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
	Err            error
}

func (e *InvalidFormatError) Error() string {
	msg := fmt.Sprintf("invalid format in '%s': %s. Expected: %s", e.FilePath, e.Msg, e.ExpectedFormat)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidFormatError) Unwrap() error {
	return e.Err
}
