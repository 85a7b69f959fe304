// Package common provides the transaction CSV reader and writer shared by the
// processor and the command line.
package common

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"fjacquet/txlabel/internal/fileutils"
	"fjacquet/txlabel/internal/logging"
	"fjacquet/txlabel/internal/models"
	"fjacquet/txlabel/internal/parsererror"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter is the field separator used when none is configured.
const DefaultDelimiter = ','

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ValidateColumns returns the required columns absent from header, in the
// order they are required. It returns nil when every column is present.
func ValidateColumns(header []string) []string {
	present := make(map[string]struct{}, len(header))
	for _, col := range header {
		present[col] = struct{}{}
	}

	var missing []string
	for _, col := range models.RequiredColumns {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

// LoadTransactions reads the transaction file at filePath. The header must name
// every required column, otherwise a *parsererror.MissingColumnsError listing
// all of them is returned and nothing is loaded. Business Type and Retailer
// default to empty when the file has no such columns.
func LoadTransactions(filePath string, delimiter rune, logger logging.Logger) ([]models.Transaction, error) {
	logger = logging.OrDefault(logger)
	logger.Info("Reading CSV file",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldDelimiter, Value: string(delimiter)})

	data, err := fileutils.ReadFile(filePath)
	if err != nil {
		logger.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	header, err := newReader(bytes.NewReader(data), delimiter).Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &parsererror.InvalidFormatError{
				FilePath:       filePath,
				ExpectedFormat: "CSV with a header row",
				Msg:            "file is empty",
			}
		}
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}
	if missing := ValidateColumns(header); len(missing) > 0 {
		err := &parsererror.MissingColumnsError{FilePath: filePath, Columns: missing}
		logger.WithError(err).Error("CSV file is missing required columns")
		return nil, err
	}

	var transactions []models.Transaction
	if err := gocsv.UnmarshalCSV(newReader(bytes.NewReader(data), delimiter), &transactions); err != nil {
		logger.WithError(err).Error("Failed to parse CSV file")
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	logger.Info("Successfully read CSV data", logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return transactions, nil
}

// SaveTransactions writes transactions to filePath with the canonical columns,
// creating parent directories as needed. Amounts are written with two decimals
// and absent amounts as empty cells.
func SaveTransactions(transactions []models.Transaction, filePath string, delimiter rune, logger logging.Logger) (err error) {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}
	logger = logging.OrDefault(logger)

	logger.Info("Writing transactions to CSV file",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	file, err := fileutils.CreateFile(filePath)
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing CSV file: %w", cerr)
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(transactions, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		logger.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	logger.Info("Successfully wrote transactions to CSV file",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return nil
}

// ParseDelimiter returns the first rune of s, or DefaultDelimiter when s is empty.
func ParseDelimiter(s string) rune {
	for _, r := range s {
		return r
	}
	return DefaultDelimiter
}

func newReader(r io.Reader, delimiter rune) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	return reader
}
