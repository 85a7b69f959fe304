// Package similar lists groups of transactions with similar descriptions.
package similar

import (
	"fmt"
	"io"

	"fjacquet/txlabel/cmd/root"
	"fjacquet/txlabel/internal/models"
	"fjacquet/txlabel/pkg/processor"

	"github.com/spf13/cobra"
)

var (
	threshold     float64
	includeLabels bool
)

// Cmd represents the similar command
var Cmd = &cobra.Command{
	Use:   "similar",
	Short: "Group transactions with similar descriptions",
	Long: `Group the transactions of the input file whose descriptions are similar to a
common seed description. By default only transactions without any label are
considered.`,
	RunE: similarFunc,
}

func init() {
	Cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0, "Minimum similarity ratio between 0 and 1 (default from config)")
	Cmd.Flags().BoolVarP(&includeLabels, "all", "a", false, "Include transactions that already have a label")
}

func similarFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	input, err := root.RequireInputFile()
	if err != nil {
		return err
	}

	t, err := ResolveThreshold(cmd.Flags().Changed("threshold"), threshold, c.GetConfig().Similarity.Threshold)
	if err != nil {
		return err
	}

	p := c.GetProcessor()
	records, err := p.LoadTransactions(input)
	if err != nil {
		return err
	}
	return printGroups(p, records, t, includeLabels, cmd.OutOrStdout())
}

// ResolveThreshold returns the flag value when it was set and the configured
// value otherwise, rejecting values outside [0, 1].
func ResolveThreshold(changed bool, flagValue, configured float64) (float64, error) {
	t := configured
	if changed {
		t = flagValue
	}
	if t < 0 || t > 1 {
		return 0, fmt.Errorf("threshold must be between 0 and 1, got: %v", t)
	}
	return t, nil
}

func printGroups(p *processor.Processor, records []models.Transaction, t float64, all bool, out io.Writer) error {
	var groups [][]int
	if all {
		groups = p.FindSimilarDescriptions(records, t)
	} else {
		groups = p.FindSimilarUncategorized(records, t)
	}

	if len(groups) == 0 {
		_, err := fmt.Fprintln(out, "No similar transaction groups found.")
		return err
	}

	if _, err := fmt.Fprintf(out, "Found %d groups of similar transactions.\n", len(groups)); err != nil {
		return err
	}
	for i, group := range groups {
		if _, err := fmt.Fprintf(out, "\nGroup %d of %d (%d transactions)\n", i+1, len(groups), len(group)); err != nil {
			return err
		}
		if err := WriteGroup(out, records, group); err != nil {
			return err
		}
	}
	return nil
}

// WriteGroup prints one line per transaction of group.
func WriteGroup(out io.Writer, records []models.Transaction, group []int) error {
	for _, idx := range group {
		tx := records[idx]
		if _, err := fmt.Fprintf(out, "  [%d] %-40s %10s %10s %s\n",
			idx, tx.Description, tx.Debit.String(), tx.Credit.String(), tx.Date); err != nil {
			return err
		}
	}
	return nil
}
