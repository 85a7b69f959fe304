// Package categorizer assigns business and retailer labels to transactions by
// matching their descriptions against the key phrases of a rule database.
package categorizer

import (
	"strings"
	"unicode"

	"fjacquet/txlabel/internal/logging"
	"fjacquet/txlabel/internal/store"
)

// Matcher finds the rules whose key phrase occurs in a description.
// Rules are scanned in database order so earlier rules win.
type Matcher struct {
	db     *store.CategoryDB
	logger logging.Logger
}

// NewMatcher creates a matcher over db. A nil db is treated as an empty database.
func NewMatcher(db *store.CategoryDB, logger logging.Logger) *Matcher {
	if db == nil {
		db = &store.CategoryDB{}
	}
	return &Matcher{
		db:     db,
		logger: logging.OrDefault(logger).WithField(logging.FieldComponent, "matcher"),
	}
}

// SetDatabase swaps the rule database, e.g. after a reload.
func (m *Matcher) SetDatabase(db *store.CategoryDB) {
	if db == nil {
		db = &store.CategoryDB{}
	}
	m.db = db
}

// Database returns the rule database the matcher reads.
func (m *Matcher) Database() *store.CategoryDB {
	return m.db
}

// Match returns, in ascending order, the indices of every rule whose key phrase
// is contained in description. Both sides are lowercased and stripped of all
// whitespace first, so "san ramon" matches "SANRAMON CA". An empty key phrase
// matches every description.
func (m *Matcher) Match(description string) []int {
	if m.db.Validate() != nil {
		return nil
	}

	normalized := Normalize(description)
	var matches []int
	for i, phrase := range m.db.Descriptions {
		if strings.Contains(normalized, Normalize(phrase)) {
			matches = append(matches, i)
		}
	}
	return matches
}

// Categorize returns the business and retailer labels for description. Each
// field takes the first non-empty label among the matching rules, independently
// of the other field. An inconsistent database logs a warning and yields no labels.
func (m *Matcher) Categorize(description string) (business, retailer string) {
	if err := m.db.Validate(); err != nil {
		m.logger.WithError(err).Warn("Rule database is inconsistent, skipping categorization",
			logging.Field{Key: logging.FieldDescription, Value: description})
		return "", ""
	}

	for _, i := range m.Match(description) {
		if business == "" {
			business = m.db.BusinessLabels[i]
		}
		if retailer == "" {
			retailer = m.db.RetailerLabels[i]
		}
		if business != "" && retailer != "" {
			break
		}
	}

	if business != "" || retailer != "" {
		m.logger.Debug("Description matched",
			logging.Field{Key: logging.FieldDescription, Value: description},
			logging.Field{Key: logging.FieldBusiness, Value: business},
			logging.Field{Key: logging.FieldRetailer, Value: retailer})
	}
	return business, retailer
}

// Normalize lowercases s and removes every whitespace character.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToLower(s))
}
