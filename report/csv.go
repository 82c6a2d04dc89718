/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/suparena/dbbench/results"
)

// renderCSV writes one flat row per phase plus one aggregate row per target,
// a shape spreadsheets and plotting scripts can consume directly.
func renderCSV(w io.Writer, runs []*results.RunResult) error {
	cw := csv.NewWriter(w)
	header := []string{
		"target", "driver", "phase", "ops", "wall_ms",
		"count", "min_ms", "max_ms", "avg_ms", "p50_ms", "p95_ms", "p99_ms", "total_ms",
		"error",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, run := range runs {
		for _, pr := range run.Phases {
			row := []string{
				run.Target, run.Driver, pr.Phase,
				fmt.Sprintf("%d", pr.Ops), fmtMs(pr.WallMs),
				"", "", "", "", "", "", "", "",
				pr.Error,
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write csv row: %w", err)
			}
		}
		agg := run.Latency
		row := []string{
			run.Target, run.Driver, "aggregate",
			fmt.Sprintf("%d", agg.Count), fmtMs(run.OverallMs),
			fmt.Sprintf("%d", agg.Count),
			fmtMs(agg.MinMs), fmtMs(agg.MaxMs), fmtMs(agg.MeanMs),
			fmtMs(agg.P50Ms), fmtMs(agg.P95Ms), fmtMs(agg.P99Ms),
			fmtMs(agg.TotalMs),
			"",
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// renderJSON emits the raw run results, matching the saved run file format.
func renderJSON(w io.Writer, runs []*results.RunResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(runs)
}
