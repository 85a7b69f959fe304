// Package batch categorizes every transaction file of a directory.
package batch

import (
	"fmt"
	"io"
	"path/filepath"

	"fjacquet/txlabel/cmd/root"
	"fjacquet/txlabel/internal/batch"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Categorize every CSV file of a directory",
	Long: `Categorize all CSV transaction files of an input directory and write them,
under the same names, to an output directory.

For this command --input and --output name directories. Only unlabeled fields
are filled in. Files that fail to load are reported and skipped.
When --output is not given, the configured output directory is used.

Example:
  txlabel batch -i statements/ -o categorized/`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer()
		if err != nil {
			return err
		}
		inputDir, err := root.RequireInputDir()
		if err != nil {
			return err
		}
		outputDir := root.SharedFlags.Output
		if outputDir == "" {
			outputDir = c.GetConfig().Output.Directory
		}

		summary, err := batch.NewRunner(c.GetProcessor(), c.GetLogger()).Run(inputDir, outputDir)
		if err != nil {
			return err
		}
		writeSummary(cmd.OutOrStdout(), summary)
		if summary.Failed > 0 {
			return fmt.Errorf("%d of %d files failed", summary.Failed, len(summary.Files))
		}
		return nil
	},
}

func writeSummary(out io.Writer, summary batch.Summary) {
	if len(summary.Files) == 0 {
		fmt.Fprintln(out, "No CSV files found.")
		return
	}
	for _, f := range summary.Files {
		name := filepath.Base(f.Input)
		if f.Err != nil {
			fmt.Fprintf(out, "FAILED %s: %v\n", name, f.Err)
			continue
		}
		fmt.Fprintf(out, "%s: %d new, %d/%d categorized", name, f.NewlyLabeled, f.Stats.Categorized, f.Stats.Total)
		if f.Duplicates > 0 {
			fmt.Fprintf(out, ", %d potential duplicates", f.Duplicates)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "\nProcessed %d files: %d succeeded, %d failed\n", len(summary.Files), summary.Succeeded, summary.Failed)
}
