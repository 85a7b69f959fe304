package models

import (
	"sort"

	"fjacquet/txlabel/internal/logging"
)

// LabelStats summarizes how far a transaction collection has been labeled.
type LabelStats struct {
	Total          int
	Categorized    int // at least one of business type or retailer set
	Uncategorized  int
	BusinessCounts map[string]int
	RetailerCounts map[string]int
}

// LabelCount is one row of a label distribution.
type LabelCount struct {
	Label string
	Count int
}

// ComputeLabelStats counts labels over transactions. Empty labels are not counted
// in the distributions.
func ComputeLabelStats(transactions []Transaction) LabelStats {
	stats := LabelStats{
		Total:          len(transactions),
		BusinessCounts: make(map[string]int),
		RetailerCounts: make(map[string]int),
	}
	for i := range transactions {
		tx := &transactions[i]
		if tx.IsCategorized() {
			stats.Categorized++
		} else {
			stats.Uncategorized++
		}
		if tx.BusinessType != "" {
			stats.BusinessCounts[tx.BusinessType]++
		}
		if tx.Retailer != "" {
			stats.RetailerCounts[tx.Retailer]++
		}
	}
	return stats
}

// CategorizedRate returns the categorized share as a percentage.
func (s LabelStats) CategorizedRate() float64 {
	if s.Total == 0 {
		return 0.0
	}
	return float64(s.Categorized) / float64(s.Total) * 100.0
}

// BusinessDistribution returns business label counts, largest first.
func (s LabelStats) BusinessDistribution() []LabelCount {
	return sortedCounts(s.BusinessCounts)
}

// RetailerDistribution returns retailer label counts, largest first.
func (s LabelStats) RetailerDistribution() []LabelCount {
	return sortedCounts(s.RetailerCounts)
}

func sortedCounts(counts map[string]int) []LabelCount {
	out := make([]LabelCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, LabelCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// LogSummary logs a summary of the label statistics
func (s LabelStats) LogSummary(logger logging.Logger, operation string) {
	if logger == nil {
		return
	}

	logger.Info("Categorization summary",
		logging.Field{Key: logging.FieldOperation, Value: operation},
		logging.Field{Key: "total_transactions", Value: s.Total},
		logging.Field{Key: "categorized", Value: s.Categorized},
		logging.Field{Key: "uncategorized", Value: s.Uncategorized},
		logging.Field{Key: "categorized_rate", Value: s.CategorizedRate()},
	)
}
