/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/dbbench/results"
)

func sampleRun(target, driver string) *results.RunResult {
	run := results.NewRunResult(target, driver)
	run.Phases = []results.PhaseResult{
		{Phase: "insert_single", Ops: 10, WallMs: 652.97},
		{Phase: "insert_multiple", Ops: 1000, WallMs: 548.91},
		{Phase: "insert_all", Ops: 2000, WallMs: 1203.4},
		{Phase: "read_specific", Ops: 10, WallMs: 478.78},
		{Phase: "read_all", Ops: 1000, WallMs: 310.2},
		{Phase: "update_specific", Ops: 10, WallMs: 448.08},
		{Phase: "update_many", Ops: 512, WallMs: 120.5},
		{Phase: "delete_specific", Ops: 1, WallMs: 45.1},
		{Phase: "delete_many", Ops: 512, WallMs: 98.7},
	}
	run.Latency = results.Aggregate{
		Count: 31, MinMs: 38.2, MaxMs: 112.9, MeanMs: 51.4,
		P50Ms: 48.1, P95Ms: 101.3, P99Ms: 112.9, TotalMs: 1593.4,
	}
	run.Finish()
	return run
}

func TestSectionsPerRun(t *testing.T) {
	secs := sections(sampleRun("mongo", "mongodb"))
	require.Len(t, secs, 6)

	titles := make([]string, len(secs))
	for i, s := range secs {
		titles[i] = s.Title
	}
	assert.Contains(t, titles[0], "INSERT")
	assert.Contains(t, titles[1], "READ")
	assert.Contains(t, titles[2], "UPDATE")
	assert.Contains(t, titles[3], "DELETE")
	assert.Contains(t, titles[4], "AGGREGATE")
	assert.Contains(t, titles[5], "OVERALL")

	require.Len(t, secs[0].Rows, 3)
	assert.Equal(t, []string{"insert_single", "10", "652.970"}, secs[0].Rows[0])
}

func TestSectionsFailedPhase(t *testing.T) {
	run := sampleRun("mongo", "mongodb")
	run.Phases[3].Error = "connection reset"

	secs := sections(run)
	readRows := secs[1].Rows
	require.NotEmpty(t, readRows)
	assert.Contains(t, readRows[0][2], "failed: connection reset")
}

func TestComparison(t *testing.T) {
	runs := []*results.RunResult{
		sampleRun("mongo", "mongodb"),
		sampleRun("dynamo", "dynamodb"),
	}
	runs[1].Phases[0].WallMs = 1207.85

	s := comparison(runs)
	assert.Equal(t, []string{"Metric", "mongo", "dynamo"}, s.Headers)
	require.Len(t, s.Rows, 4)
	assert.Equal(t, []string{"insert_single", "652.970", "1207.850"}, s.Rows[0])
	assert.Equal(t, "read_specific", s.Rows[1][0])
	assert.Equal(t, "update_specific", s.Rows[2][0])
	assert.Equal(t, "delete_specific", s.Rows[3][0])
}

func TestComparisonMissingPhase(t *testing.T) {
	run := sampleRun("astra", "astra")
	run.Phases = run.Phases[:3]

	s := comparison([]*results.RunResult{run})
	assert.Equal(t, "-", s.Rows[1][1], "missing phase renders as dash")
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, FormatTable, []*results.RunResult{sampleRun("mongo", "mongodb")})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "mongo: INSERT")
	assert.Contains(t, out, "652.970")
	assert.Contains(t, out, "Wall (ms)")
}

func TestRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	runs := []*results.RunResult{
		sampleRun("mongo", "mongodb"),
		sampleRun("astra", "astra"),
	}
	err := Render(&buf, FormatMarkdown, runs)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "### mongo: INSERT")
	assert.Contains(t, out, "| insert_single | 10 | 652.970 |")
	assert.Contains(t, out, "### Comparison (ms)")
}

func TestRenderCSV(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, FormatCSV, []*results.RunResult{sampleRun("mongo", "mongodb")})
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	// Header + nine phases + one aggregate row.
	require.Len(t, records, 11)
	assert.Equal(t, "target", records[0][0])
	assert.Equal(t, "insert_single", records[1][2])
	assert.Equal(t, "aggregate", records[10][2])
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, FormatJSON, []*results.RunResult{sampleRun("mongo", "mongodb")})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"target": "mongo"`)
}

func TestRenderUnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, "xml", nil)
	require.Error(t, err)
}
