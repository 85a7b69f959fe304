package categorizer

import (
	"fjacquet/txlabel/internal/logging"
	"fjacquet/txlabel/internal/models"
)

// BatchCategorizer fills missing labels across a set of transactions.
type BatchCategorizer struct {
	matcher *Matcher
	logger  logging.Logger
}

// NewBatchCategorizer creates a batch categorizer backed by matcher.
func NewBatchCategorizer(matcher *Matcher, logger logging.Logger) *BatchCategorizer {
	return &BatchCategorizer{
		matcher: matcher,
		logger:  logging.OrDefault(logger).WithField(logging.FieldComponent, "batch"),
	}
}

// CategorizeAll returns a copy of records where every record missing a
// business or retailer label has been run through the matcher. Only empty
// fields are filled; labels already present are never overwritten. Records
// with both labels set are left untouched. records itself is not modified.
func (b *BatchCategorizer) CategorizeAll(records []models.Transaction) []models.Transaction {
	out := models.CloneTransactions(records)

	filled := 0
	for i := range out {
		tx := &out[i]
		if tx.IsFullyLabeled() {
			continue
		}

		business, retailer := b.matcher.Categorize(tx.Description)
		changed := false
		if tx.BusinessType == "" && business != "" {
			tx.BusinessType = business
			changed = true
		}
		if tx.Retailer == "" && retailer != "" {
			tx.Retailer = retailer
			changed = true
		}
		if changed {
			filled++
		}
	}

	b.logger.Info("Batch categorization completed",
		logging.Field{Key: logging.FieldCount, Value: len(out)},
		logging.Field{Key: "updated", Value: filled})
	models.ComputeLabelStats(out).LogSummary(b.logger, "categorize_all")

	return out
}
