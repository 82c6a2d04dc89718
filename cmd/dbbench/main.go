/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/suparena/dbbench"
	"github.com/suparena/dbbench/log"
)

var (
	// Global flags
	logLevel string
	pretty   bool
	envFiles []string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dbbench",
	Short: "Benchmark CRUD latency across document and key-value databases",
	Long: `dbbench drives a fixed CRUD workload over an e-commerce transaction
dataset against one or more database targets (DynamoDB, MongoDB,
Cassandra / Astra DB) and reports per-phase wall times plus latency
percentiles for the single-record operations.

Targets and workload sizes come from a YAML plan file; credentials come
from the environment (optionally loaded from .env files).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Configure(log.Config{Level: logLevel, Pretty: pretty})
	},
	SilenceUsage: true,
}

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := dbbench.GetVersionInfo()
		fmt.Printf("dbbench %s (commit %s, built %s)\n", info.Version, info.GitCommit, info.BuildDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "human-readable log output")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env", nil, "dotenv files to load credentials from")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
