// Package review implements the interactive labeling of similar transactions.
package review

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fjacquet/txlabel/cmd/root"
	"fjacquet/txlabel/cmd/similar"
	"fjacquet/txlabel/internal/models"
	"fjacquet/txlabel/internal/review"
	"fjacquet/txlabel/pkg/processor"

	"github.com/spf13/cobra"
)

var (
	threshold      float64
	autoCategorize bool
)

// Cmd represents the review command
var Cmd = &cobra.Command{
	Use:   "review",
	Short: "Interactively label groups of similar uncategorized transactions",
	Long: `Walk through groups of similar transactions that have no label yet. For each
group enter a business type and/or a retailer, either by number from the listed
labels or as a new label. A rule is added for the group's key phrase so future
runs label these transactions automatically. Enter q to stop early.`,
	RunE: reviewFunc,
}

func init() {
	Cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0, "Minimum similarity ratio between 0 and 1 (default from config)")
	Cmd.Flags().BoolVar(&autoCategorize, "auto", true, "Apply the rule database before building groups")
}

func reviewFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}
	input, err := root.RequireInputFile()
	if err != nil {
		return err
	}
	t, err := similar.ResolveThreshold(cmd.Flags().Changed("threshold"), threshold, c.GetConfig().Similarity.Threshold)
	if err != nil {
		return err
	}

	p := c.GetProcessor()
	records, err := p.LoadTransactions(input)
	if err != nil {
		return err
	}
	if autoCategorize {
		records = p.CategorizeTransactions(records)
	}

	out := cmd.OutOrStdout()
	if err := runReview(p, records, t, cmd.InOrStdin(), out); err != nil {
		return err
	}

	output := root.OutputFile(c.GetConfig())
	if err := p.SaveTransactions(records, output); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Saved labeled transactions to %s\n", output)
	return err
}

type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// ask prints prompt and reads one line. ok is false on end of input or "q".
func (p *prompter) ask(prompt string) (answer string, ok bool) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		fmt.Fprintln(p.out)
		return "", false
	}
	answer = strings.TrimSpace(p.scanner.Text())
	if strings.EqualFold(answer, "q") {
		return "", false
	}
	return answer, true
}

// runReview labels records in place, saving the rule database after each
// group that adds a rule.
func runReview(p *processor.Processor, records []models.Transaction, t float64, in io.Reader, out io.Writer) error {
	groups := p.FindSimilarUncategorized(records, t)
	if len(groups) == 0 {
		fmt.Fprintln(out, "No similar transaction groups found!")
		return nil
	}
	fmt.Fprintf(out, "Found %d groups of similar transactions!\n", len(groups))

	prompt := &prompter{scanner: bufio.NewScanner(in), out: out}
	session := review.NewSession(groups)

	for !session.Done() {
		group, _ := session.Current()
		current, total := session.Position()

		fmt.Fprintf(out, "\nGroup %d of %d\n", current, total)
		if err := similar.WriteGroup(out, records, group); err != nil {
			return err
		}

		options := review.LabelOptions(p.Database(), records)
		writeOptions(out, "Business types", options.Business)
		writeOptions(out, "Retailers", options.Retailer)

		answer, ok := prompt.ask("Business type (number or new label, blank for none): ")
		if !ok {
			break
		}
		business := resolveChoice(answer, options.Business)

		answer, ok = prompt.ask("Retailer (number or new label, blank for none): ")
		if !ok {
			break
		}
		retailer := resolveChoice(answer, options.Retailer)

		if business == "" && retailer == "" {
			session.Skip()
			fmt.Fprintln(out, "Skipped.")
			continue
		}

		suggested := review.SuggestKeyPhrase(records[group[0]].Description)
		phrase, ok := prompt.ask(fmt.Sprintf("Key phrase for future matching [%s]: ", suggested))
		if !ok {
			break
		}

		result, err := session.Apply(records, p.Database(), review.Decision{
			Business:  business,
			Retailer:  retailer,
			KeyPhrase: phrase,
		})
		if err != nil {
			return err
		}
		if !result.RuleAdded {
			fmt.Fprintln(out, "No key phrase available, group left unlabeled.")
			continue
		}
		if err := p.SaveCategoryDB(""); err != nil {
			return err
		}
		fmt.Fprintf(out, "Applied labels to %d transactions!\n", result.Labeled)
	}

	if session.Done() {
		fmt.Fprintln(out, "All groups processed!")
	}
	return nil
}

func writeOptions(out io.Writer, title string, options []string) {
	if len(options) == 0 {
		return
	}
	fmt.Fprintf(out, "%s:\n", title)
	for i, o := range options {
		fmt.Fprintf(out, "  %d) %s\n", i+1, o)
	}
}

// resolveChoice maps a 1-based option number to its label; anything else is taken as a new label.
func resolveChoice(answer string, options []string) string {
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
		return options[n-1]
	}
	return answer
}
