// Package categorize handles transaction categorization commands
package categorize

import (
	"fmt"
	"io"

	"fjacquet/txlabel/cmd/root"
	"fjacquet/txlabel/pkg/processor"

	"github.com/spf13/cobra"
)

var description string

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize transactions using the rule database",
	Long: `Categorize transactions by matching their descriptions against the key phrases
of the rule database. Use --description for a single description, or --input to
label every transaction of a CSV file that is still missing a label.`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Single transaction description to categorize")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	p := c.GetProcessor()

	if description != "" {
		return categorizeDescription(p, description, cmd.OutOrStdout())
	}

	if root.SharedFlags.Input == "" {
		return fmt.Errorf("either --description or --input is required")
	}
	input, err := root.RequireInputFile()
	if err != nil {
		return err
	}
	return categorizeFile(p, input, root.OutputFile(c.GetConfig()), cmd.OutOrStdout())
}

func categorizeDescription(p *processor.Processor, desc string, out io.Writer) error {
	business, retailer := p.CategorizeTransaction(desc)
	_, err := fmt.Fprintf(out, "Business Type: %s\nRetailer: %s\n", business, retailer)
	return err
}

func categorizeFile(p *processor.Processor, input, output string, out io.Writer) error {
	records, err := p.LoadTransactions(input)
	if err != nil {
		return err
	}

	before := p.Stats(records)
	categorized := p.CategorizeTransactions(records)
	after := p.Stats(categorized)

	if err := p.SaveTransactions(categorized, output); err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "Categorized %d new transactions. Total categorized: %d out of %d.\nSaved to %s\n",
		after.Categorized-before.Categorized, after.Categorized, after.Total, output)
	return err
}
