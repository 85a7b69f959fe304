// Package similarity groups transactions whose descriptions look alike so they
// can be labeled together.
package similarity

import (
	"github.com/pmezard/go-difflib/difflib"

	"fjacquet/txlabel/internal/models"
)

// DefaultThreshold is the minimum ratio for two descriptions to be grouped.
const DefaultThreshold = 0.6

// Entry is a description together with its index in the original collection.
type Entry struct {
	Index       int
	Description string
}

// Ratio returns the similarity of a and b in [0, 1], computed as 2*M/T where M
// is the number of characters in matching blocks and T the total number of
// characters in both strings. Two empty strings are identical.
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(runes(a), runes(b)).Ratio()
}

func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Group clusters entries in a single greedy pass. Each entry not yet grouped
// becomes a seed, and every later ungrouped entry whose ratio against the seed
// is at least threshold joins it. Members are compared to the seed only, never
// to each other. Only groups of two or more are returned, in seed order, each
// listing original indices with the seed first.
func Group(entries []Entry, threshold float64) [][]int {
	grouped := make([]bool, len(entries))
	var groups [][]int

	for i, seed := range entries {
		if grouped[i] {
			continue
		}
		grouped[i] = true
		group := []int{seed.Index}

		for j := i + 1; j < len(entries); j++ {
			if grouped[j] {
				continue
			}
			if Ratio(seed.Description, entries[j].Description) >= threshold {
				group = append(group, entries[j].Index)
				grouped[j] = true
			}
		}

		if len(group) > 1 {
			groups = append(groups, group)
		}
	}

	return groups
}

// AllEntries returns an entry for every record.
func AllEntries(records []models.Transaction) []Entry {
	entries := make([]Entry, len(records))
	for i, tx := range records {
		entries[i] = Entry{Index: i, Description: tx.Description}
	}
	return entries
}

// EntriesFor returns entries for the records at indices, in the order given.
// Indices outside records are skipped.
func EntriesFor(records []models.Transaction, indices []int) []Entry {
	entries := make([]Entry, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(records) {
			continue
		}
		entries = append(entries, Entry{Index: i, Description: records[i].Description})
	}
	return entries
}
