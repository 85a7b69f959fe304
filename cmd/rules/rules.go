// Package rules manages the rule database from the command line.
package rules

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"fjacquet/txlabel/cmd/root"
	"fjacquet/txlabel/pkg/processor"

	"github.com/spf13/cobra"
)

var (
	business string
	retailer string
)

// Cmd represents the rules command
var Cmd = &cobra.Command{
	Use:   "rules",
	Short: "List or add categorization rules",
	Long:  `Inspect the ordered rule database or append a new key phrase rule to it.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List rules in precedence order",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return listRules(c.GetProcessor(), cmd.OutOrStdout())
	},
}

var addCmd = &cobra.Command{
	Use:   "add <key phrase>",
	Short: "Append a rule and save the rule database",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		return addRule(c.GetProcessor(), strings.Join(args, " "), business, retailer, cmd.OutOrStdout())
	},
}

func init() {
	addCmd.Flags().StringVarP(&business, "business", "b", "", "Business type label")
	addCmd.Flags().StringVarP(&retailer, "retailer", "t", "", "Retailer label")

	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(addCmd)
}

func listRules(p *processor.Processor, out io.Writer) error {
	db := p.Database()
	if err := db.Validate(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tKEY PHRASE\tBUSINESS TYPE\tRETAILER")
	for i, rule := range db.Rules() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, rule.KeyPhrase, rule.BusinessLabel, rule.RetailerLabel)
	}
	return w.Flush()
}

func addRule(p *processor.Processor, keyPhrase, business, retailer string, out io.Writer) error {
	keyPhrase = strings.TrimSpace(keyPhrase)
	if keyPhrase == "" {
		return fmt.Errorf("key phrase must not be empty")
	}
	if business == "" && retailer == "" {
		return fmt.Errorf("at least one of --business or --retailer is required")
	}

	p.AddCategory(keyPhrase, business, retailer)
	if err := p.SaveCategoryDB(""); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "Added rule %q (business type %q, retailer %q)\n", keyPhrase, business, retailer)
	return err
}
