// Package stats reports labeling statistics for a transaction file.
package stats

import (
	"fmt"
	"io"

	"fjacquet/txlabel/cmd/root"
	"fjacquet/txlabel/internal/dateutils"
	"fjacquet/txlabel/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the stats command
var Cmd = &cobra.Command{
	Use:   "stats",
	Short: "Show labeling statistics for a transaction file",
	Long:  `Show how many transactions of the input file are labeled and how labels are distributed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		input, err := root.RequireInputFile()
		if err != nil {
			return err
		}
		p := c.GetProcessor()
		records, err := p.LoadTransactions(input)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		writePeriod(out, records)
		return writeStats(p.Stats(records), out)
	},
}

func writeStats(s models.LabelStats, out io.Writer) error {
	uncategorizedRate := 0.0
	if s.Total > 0 {
		uncategorizedRate = 100 - s.CategorizedRate()
	}

	fmt.Fprintf(out, "Total Transactions: %d\n", s.Total)
	fmt.Fprintf(out, "Categorized: %d (%.1f%%)\n", s.Categorized, s.CategorizedRate())
	fmt.Fprintf(out, "Uncategorized: %d (%.1f%%)\n", s.Uncategorized, uncategorizedRate)

	writeDistribution(out, "Business Type Distribution", "No Business Types assigned yet", s.BusinessDistribution(), s.Total)
	writeDistribution(out, "Retailer Distribution", "No Retailers assigned yet", s.RetailerDistribution(), s.Total)
	return nil
}

func writePeriod(out io.Writer, records []models.Transaction) {
	dates := make([]string, len(records))
	for i, tx := range records {
		dates[i] = tx.Date
	}
	if first, last, ok := dateutils.Range(dates); ok {
		fmt.Fprintf(out, "Period: %s to %s\n", dateutils.ToISODate(first), dateutils.ToISODate(last))
	}
}

func writeDistribution(out io.Writer, title, empty string, counts []models.LabelCount, total int) {
	fmt.Fprintf(out, "\n%s\n", title)
	if len(counts) == 0 {
		fmt.Fprintf(out, "  %s\n", empty)
		return
	}
	for _, c := range counts {
		fmt.Fprintf(out, "  %-30s %5d (%.1f%%)\n", c.Label, c.Count, float64(c.Count)*100/float64(total))
	}
}
