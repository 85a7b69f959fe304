// Package store holds the category rule database and reads and writes it to disk.
package store

import (
	"sort"

	"fjacquet/txlabel/internal/models"
	"fjacquet/txlabel/internal/parsererror"
)

// CategoryDB is an ordered list of category rules kept as three parallel
// sequences. Index i across the three slices is rule i; earlier rules take
// precedence when several match. The slices are exported so callers can
// inspect the raw data, but only AddCategory should grow them.
type CategoryDB struct {
	Descriptions   []string
	BusinessLabels []string
	RetailerLabels []string
}

// DefaultRules returns the rules a fresh database starts with.
func DefaultRules() []models.CategoryRule {
	return []models.CategoryRule{
		{KeyPhrase: "oakhurst", BusinessLabel: "Oakhurst"},
		{KeyPhrase: "pleasanton", BusinessLabel: "Personal"},
		{KeyPhrase: "san ramon", BusinessLabel: "Personal"},
		{KeyPhrase: "dublin", BusinessLabel: "Personal"},
		{KeyPhrase: "amazon", RetailerLabel: "Amazon"},
		{KeyPhrase: "costco", RetailerLabel: "Costco"},
	}
}

// NewCategoryDB builds a database from rules, preserving their order.
func NewCategoryDB(rules []models.CategoryRule) *CategoryDB {
	db := &CategoryDB{
		Descriptions:   make([]string, 0, len(rules)),
		BusinessLabels: make([]string, 0, len(rules)),
		RetailerLabels: make([]string, 0, len(rules)),
	}
	for _, r := range rules {
		db.AddCategory(r.KeyPhrase, r.BusinessLabel, r.RetailerLabel)
	}
	return db
}

// NewDefaultCategoryDB returns a database holding DefaultRules.
func NewDefaultCategoryDB() *CategoryDB {
	return NewCategoryDB(DefaultRules())
}

// AddCategory appends a rule. Values are stored verbatim and duplicates of an
// existing key phrase are allowed; the earlier rule keeps precedence.
func (db *CategoryDB) AddCategory(keyPhrase, businessLabel, retailerLabel string) {
	db.Descriptions = append(db.Descriptions, keyPhrase)
	db.BusinessLabels = append(db.BusinessLabels, businessLabel)
	db.RetailerLabels = append(db.RetailerLabels, retailerLabel)
}

// Len returns the number of key phrases.
func (db *CategoryDB) Len() int {
	return len(db.Descriptions)
}

// Validate reports an IntegrityError when the three sequences differ in length.
func (db *CategoryDB) Validate() error {
	d, b, r := len(db.Descriptions), len(db.BusinessLabels), len(db.RetailerLabels)
	if d != b || d != r {
		return &parsererror.IntegrityError{Descriptions: d, BusinessLabels: b, RetailerLabels: r}
	}
	return nil
}

// Rule returns rule i. ok is false when i is out of range for any of the sequences.
func (db *CategoryDB) Rule(i int) (rule models.CategoryRule, ok bool) {
	if i < 0 || i >= len(db.Descriptions) || i >= len(db.BusinessLabels) || i >= len(db.RetailerLabels) {
		return models.CategoryRule{}, false
	}
	return models.CategoryRule{
		KeyPhrase:     db.Descriptions[i],
		BusinessLabel: db.BusinessLabels[i],
		RetailerLabel: db.RetailerLabels[i],
	}, true
}

// Rules returns every complete rule in order.
func (db *CategoryDB) Rules() []models.CategoryRule {
	n := min(len(db.Descriptions), len(db.BusinessLabels), len(db.RetailerLabels))
	rules := make([]models.CategoryRule, 0, n)
	for i := 0; i < n; i++ {
		rule, _ := db.Rule(i)
		rules = append(rules, rule)
	}
	return rules
}

// Clone returns a deep copy.
func (db *CategoryDB) Clone() *CategoryDB {
	return &CategoryDB{
		Descriptions:   append([]string(nil), db.Descriptions...),
		BusinessLabels: append([]string(nil), db.BusinessLabels...),
		RetailerLabels: append([]string(nil), db.RetailerLabels...),
	}
}

// BusinessLabelSet returns the distinct non-empty business labels, sorted.
func (db *CategoryDB) BusinessLabelSet() []string {
	return distinctSorted(db.BusinessLabels)
}

// RetailerLabelSet returns the distinct non-empty retailer labels, sorted.
func (db *CategoryDB) RetailerLabelSet() []string {
	return distinctSorted(db.RetailerLabels)
}

func distinctSorted(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l == "" {
			continue
		}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}
