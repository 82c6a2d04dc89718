/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package report

import (
	"fmt"
	"io"

	"github.com/suparena/dbbench/errors"
	"github.com/suparena/dbbench/results"
	"github.com/suparena/dbbench/workload"
)

// Supported output formats.
const (
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
	FormatJSON     = "json"
)

// headlinePhases are the four single-record phases the cross-target
// comparison charts, matching the original's bar chart.
var headlinePhases = []workload.Phase{
	workload.PhaseInsertSingle,
	workload.PhaseReadSpecific,
	workload.PhaseUpdateSpecific,
	workload.PhaseDeleteSpecific,
}

// section is one titled table of the report.
type section struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Render writes the runs in the requested format.
func Render(w io.Writer, format string, runs []*results.RunResult) error {
	switch format {
	case FormatTable:
		return renderTerminal(w, runs)
	case FormatMarkdown:
		return renderMarkdown(w, runs)
	case FormatCSV:
		return renderCSV(w, runs)
	case FormatJSON:
		return renderJSON(w, runs)
	default:
		return errors.NewConfigError("output.format", fmt.Sprintf("unknown format %q", format))
	}
}

// sections builds the per-target tables: one per operation group, then the
// latency aggregate and the overall wall time.
func sections(run *results.RunResult) []section {
	out := make([]section, 0, 6)
	for _, group := range []string{"insert", "read", "update", "delete"} {
		s := section{
			Title:   fmt.Sprintf("%s: %s", run.Target, groupTitle(group)),
			Headers: []string{"Phase", "Ops", "Wall (ms)"},
		}
		for _, phase := range workload.Phases() {
			if phase.Group() != group {
				continue
			}
			pr, ok := run.Phase(string(phase))
			if !ok {
				continue
			}
			row := []string{string(phase), fmt.Sprintf("%d", pr.Ops), fmtMs(pr.WallMs)}
			if pr.Error != "" {
				row[2] = "failed: " + pr.Error
			}
			s.Rows = append(s.Rows, row)
		}
		out = append(out, s)
	}

	agg := run.Latency
	out = append(out, section{
		Title:   fmt.Sprintf("%s: AGGREGATE (single-record ops)", run.Target),
		Headers: []string{"Count", "Min (ms)", "Max (ms)", "Avg (ms)", "p50 (ms)", "p95 (ms)", "p99 (ms)", "Total (ms)"},
		Rows: [][]string{{
			fmt.Sprintf("%d", agg.Count),
			fmtMs(agg.MinMs), fmtMs(agg.MaxMs), fmtMs(agg.MeanMs),
			fmtMs(agg.P50Ms), fmtMs(agg.P95Ms), fmtMs(agg.P99Ms),
			fmtMs(agg.TotalMs),
		}},
	})

	out = append(out, section{
		Title:   fmt.Sprintf("%s: OVERALL", run.Target),
		Headers: []string{"Target", "Driver", "Phases", "Overall (ms)"},
		Rows: [][]string{{
			run.Target, run.Driver,
			fmt.Sprintf("%d", len(run.Phases)),
			fmtMs(run.OverallMs),
		}},
	})
	return out
}

// comparison builds the cross-target table of the four headline metrics.
// It needs at least one run; targets are columns, metrics are rows.
func comparison(runs []*results.RunResult) section {
	s := section{
		Title:   "Comparison (ms)",
		Headers: make([]string, 0, len(runs)+1),
	}
	s.Headers = append(s.Headers, "Metric")
	for _, run := range runs {
		s.Headers = append(s.Headers, run.Target)
	}
	for _, phase := range headlinePhases {
		row := make([]string, 0, len(runs)+1)
		row = append(row, string(phase))
		for _, run := range runs {
			if pr, ok := run.Phase(string(phase)); ok && pr.Error == "" {
				row = append(row, fmtMs(pr.WallMs))
			} else {
				row = append(row, "-")
			}
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

func allSections(runs []*results.RunResult) []section {
	var out []section
	for _, run := range runs {
		out = append(out, sections(run)...)
	}
	if len(runs) > 1 {
		out = append(out, comparison(runs))
	}
	return out
}

func groupTitle(group string) string {
	switch group {
	case "insert":
		return "INSERT"
	case "read":
		return "READ"
	case "update":
		return "UPDATE"
	case "delete":
		return "DELETE"
	default:
		return group
	}
}

func fmtMs(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
