/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/suparena/dbbench/dataset"
	"github.com/suparena/dbbench/log"
)

var (
	generateCount int
	generateSeed  int64
	generateOut   string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a synthetic transaction dataset as CSV",
	Long: `Generates a deterministic synthetic dataset in the e-commerce
transaction schema and writes it as CSV. The same count and seed always
produce the same file, so plans stay reproducible without shipping data.`,
	RunE: generateDataset,
}

func init() {
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 3100, "number of records")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 1, "generator seed")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "transactions.csv", "output file")
}

func generateDataset(cmd *cobra.Command, args []string) error {
	records := dataset.Generate(generateCount, generateSeed)

	f, err := os.Create(generateOut)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", generateOut, err)
	}
	defer f.Close()

	if err := dataset.WriteCSV(f, records); err != nil {
		return err
	}
	logger := log.WithComponent("cli")
	logger.Info().
		Int("records", len(records)).
		Str("path", generateOut).
		Msg("dataset written")
	return nil
}
