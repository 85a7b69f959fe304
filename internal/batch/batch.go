// Package batch categorizes every transaction file of a directory in one run.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fjacquet/txlabel/internal/dateutils"
	"fjacquet/txlabel/internal/fileutils"
	"fjacquet/txlabel/internal/logging"
	"fjacquet/txlabel/internal/models"
)

// Categorizer is the part of the processor a batch run needs.
type Categorizer interface {
	LoadTransactions(path string) ([]models.Transaction, error)
	CategorizeTransactions(records []models.Transaction) []models.Transaction
	SaveTransactions(records []models.Transaction, path string) error
}

// FileResult is the outcome for one input file.
type FileResult struct {
	Input       string
	Output      string
	Stats       models.LabelStats
	NewlyLabeled int
	Duplicates  int
	Err         error
}

// Summary aggregates a batch run.
type Summary struct {
	Files     []FileResult
	Succeeded int
	Failed    int
}

// Runner categorizes the CSV files of a directory.
type Runner struct {
	categorizer Categorizer
	logger      logging.Logger
}

// NewRunner creates a runner backed by categorizer.
func NewRunner(categorizer Categorizer, logger logging.Logger) *Runner {
	return &Runner{
		categorizer: categorizer,
		logger:      logging.OrDefault(logger).WithField(logging.FieldComponent, "batch"),
	}
}

// ListInputFiles returns the .csv files directly inside dir, sorted by name.
func ListInputFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Run categorizes each CSV file of inputDir and writes it under the same name
// to outputDir. A failing file is recorded in the summary and does not stop
// the run. An error is returned only when the directories are unusable.
func (r *Runner) Run(inputDir, outputDir string) (Summary, error) {
	if filepath.Clean(inputDir) == filepath.Clean(outputDir) {
		return Summary{}, fmt.Errorf("input and output directories must differ: %s", inputDir)
	}

	files, err := ListInputFiles(inputDir)
	if err != nil {
		return Summary{}, err
	}
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return Summary{}, err
	}

	r.logger.Info("Starting batch categorization",
		logging.Field{Key: logging.FieldInputFile, Value: inputDir},
		logging.Field{Key: logging.FieldOutputFile, Value: outputDir},
		logging.Field{Key: logging.FieldCount, Value: len(files)})

	var summary Summary
	for _, file := range files {
		result := r.processFile(file, filepath.Join(outputDir, filepath.Base(file)))
		if result.Err != nil {
			summary.Failed++
			r.logger.WithError(result.Err).Error("Failed to categorize file",
				logging.Field{Key: logging.FieldInputFile, Value: file})
		} else {
			summary.Succeeded++
		}
		summary.Files = append(summary.Files, result)
	}

	r.logger.Info("Batch categorization finished",
		logging.Field{Key: "succeeded", Value: summary.Succeeded},
		logging.Field{Key: "failed", Value: summary.Failed})
	return summary, nil
}

func (r *Runner) processFile(input, output string) FileResult {
	result := FileResult{Input: input, Output: output}

	records, err := r.categorizer.LoadTransactions(input)
	if err != nil {
		result.Err = err
		return result
	}

	before := models.ComputeLabelStats(records)
	categorized := r.categorizer.CategorizeTransactions(records)
	result.Stats = models.ComputeLabelStats(categorized)
	result.NewlyLabeled = result.Stats.Categorized - before.Categorized
	result.Duplicates = r.detectAndLogDuplicates(categorized, input)

	if err := r.categorizer.SaveTransactions(categorized, output); err != nil {
		result.Err = err
	}
	return result
}

// detectAndLogDuplicates warns about records that look like the same
// transaction exported twice. Duplicates are reported, never removed.
func (r *Runner) detectAndLogDuplicates(records []models.Transaction, file string) int {
	seen := make(map[string]int, len(records))
	count := 0
	for i, tx := range records {
		key := duplicateKey(tx)
		if first, ok := seen[key]; ok {
			count++
			r.logger.Warn("Potential duplicate transaction",
				logging.Field{Key: logging.FieldFile, Value: file},
				logging.Field{Key: "row", Value: i},
				logging.Field{Key: "first_row", Value: first},
				logging.Field{Key: logging.FieldDescription, Value: tx.Description})
			continue
		}
		seen[key] = i
	}
	return count
}

func duplicateKey(tx models.Transaction) string {
	return strings.Join([]string{
		dateutils.Normalize(tx.Date),
		strings.ToLower(strings.TrimSpace(tx.Description)),
		tx.Debit.String(),
		tx.Credit.String(),
		tx.MemberName,
	}, "\x1f")
}
