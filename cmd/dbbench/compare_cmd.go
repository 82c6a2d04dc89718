/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/suparena/dbbench/report"
	"github.com/suparena/dbbench/results"
)

var compareFormat string

var compareCmd = &cobra.Command{
	Use:   "compare [run.json ...]",
	Short: "Render saved benchmark runs side by side",
	Long: `Reads run JSON files saved by a previous run and renders the result
tables plus the cross-target comparison of the headline metrics. Runs
from different invocations can be mixed, so a target can be benchmarked
today and compared against last week's numbers.`,
	Args: cobra.MinimumNArgs(1),
	RunE: compareRuns,
}

func init() {
	compareCmd.Flags().StringVarP(&compareFormat, "format", "f", report.FormatTable, "output format: table, markdown, csv, json")
}

func compareRuns(cmd *cobra.Command, args []string) error {
	runs := make([]*results.RunResult, 0, len(args))
	for _, path := range args {
		run, err := results.Load(path)
		if err != nil {
			return err
		}
		runs = append(runs, run)
	}
	return report.Render(os.Stdout, compareFormat, runs)
}
