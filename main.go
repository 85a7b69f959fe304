package main

import (
	"fmt"
	"os"

	"fjacquet/txlabel/cmd/batch"
	"fjacquet/txlabel/cmd/categorize"
	"fjacquet/txlabel/cmd/review"
	"fjacquet/txlabel/cmd/root"
	"fjacquet/txlabel/cmd/rules"
	"fjacquet/txlabel/cmd/similar"
	"fjacquet/txlabel/cmd/stats"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(similar.Cmd)
	root.Cmd.AddCommand(review.Cmd)
	root.Cmd.AddCommand(rules.Cmd)
	root.Cmd.AddCommand(stats.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
