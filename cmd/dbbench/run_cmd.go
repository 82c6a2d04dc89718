/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/suparena/dbbench"
	"github.com/suparena/dbbench/config"
	"github.com/suparena/dbbench/dataset"
	"github.com/suparena/dbbench/log"
	"github.com/suparena/dbbench/metrics"
	"github.com/suparena/dbbench/registry"
	"github.com/suparena/dbbench/report"
	"github.com/suparena/dbbench/results"
	"github.com/suparena/dbbench/workload"

	// Benchmark drivers register themselves on import.
	_ "github.com/suparena/dbbench/target/astra"
	_ "github.com/suparena/dbbench/target/ddb"
	_ "github.com/suparena/dbbench/target/mock"
	_ "github.com/suparena/dbbench/target/mongodb"
)

var (
	planPath     string
	outputFormat string
	parallelism  int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute a benchmark plan and report the results",
	Long: `Loads the plan, connects to every configured target, runs the full
phase sequence against each and renders the result tables. Run JSON is
saved under the plan's output directory for later comparison.`,
	RunE: runBenchmark,
}

func init() {
	runCmd.Flags().StringVarP(&planPath, "plan", "p", "dbbench.yaml", "benchmark plan file")
	runCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format: table, markdown, csv, json (overrides plan)")
	runCmd.Flags().IntVar(&parallelism, "parallel", 0, "run up to N targets concurrently (0 = sequential)")
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	logger := log.WithComponent("cli")

	cfg, err := config.Load(planPath)
	if err != nil {
		return err
	}
	if outputFormat != "" {
		cfg.Output.Format = outputFormat
	}
	creds := config.LoadEnv(envFiles...)

	records, err := loadRecords(cfg.Dataset)
	if err != nil {
		return err
	}
	split := dataset.NewSplit(records,
		cfg.Workload.SingleOps, cfg.Workload.BatchSize, cfg.Workload.BulkSize)
	logger.Info().
		Int("records", split.Total()).
		Int("targets", len(cfg.Targets)).
		Msg("plan loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr); err != nil {
				logger.Error().Err(err).Msg("metrics listener failed")
			}
		}()
	}

	opts := workload.OptionsFromConfig(cfg.Workload)
	opts = append(opts, workload.WithObserver(func(target string, phase workload.Phase, latency time.Duration, err error) {
		metrics.ObserveOp(target, string(phase), latency, err)
	}))

	suite := dbbench.NewSuite(split, opts...)
	suite.SetParallelism(parallelism)
	defer func() {
		if err := suite.Close(context.Background()); err != nil {
			logger.Warn().Err(err).Msg("target close failed")
		}
	}()

	for _, tc := range cfg.Targets {
		tgt, err := registry.Open(tc, creds)
		if err != nil {
			return fmt.Errorf("failed to open target %q: %w", tc.Label(), err)
		}
		if err := suite.Register(tgt); err != nil {
			return err
		}
	}

	runs, runErr := suite.RunAll(ctx)

	if cfg.Output.Dir != "" {
		for _, run := range runs {
			path, err := results.Save(cfg.Output.Dir, run)
			if err != nil {
				logger.Warn().Err(err).Str("target", run.Target).Msg("failed to save run")
				continue
			}
			logger.Info().Str("path", path).Msg("run saved")
		}
	}

	if err := report.Render(os.Stdout, cfg.Output.Format, runs); err != nil {
		return err
	}
	return runErr
}

func loadRecords(dc config.DatasetConfig) ([]dataset.Record, error) {
	if dc.Path != "" {
		return dataset.LoadCSV(dc.Path)
	}
	return dataset.Generate(dc.Synthetic, dc.Seed), nil
}
