// Package processor is the entry point for loading, categorizing and
// grouping transactions against a rule database.
package processor

import (
	"fjacquet/txlabel/internal/categorizer"
	"fjacquet/txlabel/internal/common"
	"fjacquet/txlabel/internal/logging"
	"fjacquet/txlabel/internal/models"
	"fjacquet/txlabel/internal/review"
	"fjacquet/txlabel/internal/similarity"
	"fjacquet/txlabel/internal/store"
)

// Processor ties a rule database to the categorizer and similarity grouper.
// It is not safe for concurrent use.
type Processor struct {
	rules     *store.RuleStore
	db        *store.CategoryDB
	matcher   *categorizer.Matcher
	batch     *categorizer.BatchCategorizer
	delimiter rune
	logger    logging.Logger
}

// NewProcessor creates a processor over db, persisted through rules.
// A nil db starts from the default rules.
func NewProcessor(rules *store.RuleStore, db *store.CategoryDB, delimiter rune, logger logging.Logger) *Processor {
	logger = logging.OrDefault(logger)
	if rules == nil {
		rules = store.NewRuleStore("", logger)
	}
	if db == nil {
		db = store.NewDefaultCategoryDB()
	}
	if delimiter == 0 {
		delimiter = common.DefaultDelimiter
	}

	matcher := categorizer.NewMatcher(db, logger)
	return &Processor{
		rules:     rules,
		db:        db,
		matcher:   matcher,
		batch:     categorizer.NewBatchCategorizer(matcher, logger),
		delimiter: delimiter,
		logger:    logger.WithField(logging.FieldComponent, "processor"),
	}
}

// Database returns the live rule database.
func (p *Processor) Database() *store.CategoryDB {
	return p.db
}

// LoadTransactions reads a transaction CSV file.
func (p *Processor) LoadTransactions(path string) ([]models.Transaction, error) {
	return common.LoadTransactions(path, p.delimiter, p.logger)
}

// SaveTransactions writes transactions to a CSV file.
func (p *Processor) SaveTransactions(records []models.Transaction, path string) error {
	return common.SaveTransactions(records, path, p.delimiter, p.logger)
}

// CategorizeTransaction returns the business and retailer labels for a description.
func (p *Processor) CategorizeTransaction(description string) (business, retailer string) {
	return p.matcher.Categorize(description)
}

// CategorizeTransactions returns a copy of records with missing labels filled in.
func (p *Processor) CategorizeTransactions(records []models.Transaction) []models.Transaction {
	return p.batch.CategorizeAll(records)
}

// FindSimilarDescriptions groups all records by description similarity.
func (p *Processor) FindSimilarDescriptions(records []models.Transaction, threshold float64) [][]int {
	return p.group(similarity.AllEntries(records), threshold)
}

// FindSimilarUncategorized groups the records that have no label yet.
func (p *Processor) FindSimilarUncategorized(records []models.Transaction, threshold float64) [][]int {
	return p.group(similarity.EntriesFor(records, review.Uncategorized(records)), threshold)
}

func (p *Processor) group(entries []similarity.Entry, threshold float64) [][]int {
	groups := similarity.Group(entries, threshold)
	p.logger.Info("Grouped similar descriptions",
		logging.Field{Key: logging.FieldCount, Value: len(entries)},
		logging.Field{Key: logging.FieldThreshold, Value: threshold},
		logging.Field{Key: logging.FieldGroups, Value: len(groups)})
	return groups
}

// AddCategory appends a rule to the in-memory database. Call SaveCategoryDB to persist it.
func (p *Processor) AddCategory(keyPhrase, business, retailer string) {
	p.db.AddCategory(keyPhrase, business, retailer)
	p.logger.Debug("Added category rule",
		logging.Field{Key: logging.FieldKeyPhrase, Value: keyPhrase},
		logging.Field{Key: logging.FieldBusiness, Value: business},
		logging.Field{Key: logging.FieldRetailer, Value: retailer})
}

// SaveCategoryDB writes the rule database to path, or to the store's file when path is empty.
func (p *Processor) SaveCategoryDB(path string) error {
	if path == "" {
		return p.rules.Save(p.db)
	}
	return p.rules.SaveTo(p.db, path)
}

// ReloadCategoryDB replaces the in-memory database with the store's content.
func (p *Processor) ReloadCategoryDB() (store.LoadResult, error) {
	result, err := p.rules.Load()
	if err != nil {
		return store.LoadResult{}, err
	}
	p.db = result.DB
	p.matcher.SetDatabase(result.DB)
	return result, nil
}

// Stats computes label statistics for records.
func (p *Processor) Stats(records []models.Transaction) models.LabelStats {
	return models.ComputeLabelStats(records)
}
