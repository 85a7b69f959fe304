// Package review walks a user through groups of similar uncategorized
// transactions, turning each labeling decision into a new rule.
package review

import (
	"errors"
	"sort"
	"strings"

	"fjacquet/txlabel/internal/models"
	"fjacquet/txlabel/internal/store"
)

// ErrSessionDone is returned by Apply once every group has been visited.
var ErrSessionDone = errors.New("review session has no remaining groups")

// Decision is the user's answer for one group. Empty fields mean "not set".
type Decision struct {
	Business  string
	Retailer  string
	KeyPhrase string
}

// ApplyResult describes what Apply changed.
type ApplyResult struct {
	RuleAdded bool
	Rule      models.CategoryRule
	Labeled   int
}

// Session holds the position in a list of similarity groups. It is owned by
// the caller and not safe for concurrent use.
type Session struct {
	groups [][]int
	pos    int
}

// NewSession starts a review over groups.
func NewSession(groups [][]int) *Session {
	return &Session{groups: groups}
}

// Current returns the group under review.
func (s *Session) Current() ([]int, bool) {
	if s.Done() {
		return nil, false
	}
	return s.groups[s.pos], true
}

// Position returns the 1-based number of the current group and the group count.
func (s *Session) Position() (current, total int) {
	return s.pos + 1, len(s.groups)
}

// Done reports whether every group has been applied or skipped.
func (s *Session) Done() bool {
	return s.pos >= len(s.groups)
}

// Skip moves to the next group without changing anything.
func (s *Session) Skip() {
	if !s.Done() {
		s.pos++
	}
}

// Apply records decision for the current group and advances. When the
// decision carries a label, a rule is appended to db and every record of the
// group receives the non-empty labels. Without a key phrase the first two
// words of the seed description are used; if that is empty nothing changes.
func (s *Session) Apply(records []models.Transaction, db *store.CategoryDB, decision Decision) (ApplyResult, error) {
	group, ok := s.Current()
	if !ok {
		return ApplyResult{}, ErrSessionDone
	}
	defer s.Skip()

	business := strings.TrimSpace(decision.Business)
	retailer := strings.TrimSpace(decision.Retailer)
	if business == "" && retailer == "" {
		return ApplyResult{}, nil
	}

	phrase := strings.TrimSpace(decision.KeyPhrase)
	if phrase == "" && group[0] >= 0 && group[0] < len(records) {
		phrase = SuggestKeyPhrase(records[group[0]].Description)
	}
	if phrase == "" {
		return ApplyResult{}, nil
	}

	db.AddCategory(phrase, business, retailer)
	result := ApplyResult{
		RuleAdded: true,
		Rule:      models.CategoryRule{KeyPhrase: phrase, BusinessLabel: business, RetailerLabel: retailer},
	}

	for _, idx := range group {
		if idx < 0 || idx >= len(records) {
			continue
		}
		if business != "" {
			records[idx].BusinessType = business
		}
		if retailer != "" {
			records[idx].Retailer = retailer
		}
		result.Labeled++
	}
	return result, nil
}

// SuggestKeyPhrase returns the first two words of the lowercased description.
func SuggestKeyPhrase(description string) string {
	words := strings.Fields(strings.ToLower(description))
	if len(words) > 2 {
		words = words[:2]
	}
	return strings.Join(words, " ")
}

// Uncategorized returns the indices of records with neither label set.
func Uncategorized(records []models.Transaction) []int {
	var indices []int
	for i := range records {
		if !records[i].IsCategorized() {
			indices = append(indices, i)
		}
	}
	return indices
}

// Options are the existing labels offered when labeling a group.
type Options struct {
	Business []string
	Retailer []string
}

// LabelOptions collects the distinct non-empty labels known to db and used in records, sorted.
func LabelOptions(db *store.CategoryDB, records []models.Transaction) Options {
	business := map[string]struct{}{}
	retailer := map[string]struct{}{}
	if db != nil {
		for _, l := range db.BusinessLabels {
			business[l] = struct{}{}
		}
		for _, l := range db.RetailerLabels {
			retailer[l] = struct{}{}
		}
	}
	for _, tx := range records {
		business[tx.BusinessType] = struct{}{}
		retailer[tx.Retailer] = struct{}{}
	}
	return Options{Business: sortedKeys(business), Retailer: sortedKeys(retailer)}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		if k != "" {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
