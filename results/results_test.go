/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package results

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRun() *RunResult {
	run := NewRunResult("atlas", "mongodb")
	run.Phases = []PhaseResult{
		{Phase: "insert_single", Ops: 10, WallMs: 652.97},
		{Phase: "read_specific", Ops: 10, WallMs: 548.91},
		{Phase: "update_specific", Ops: 10, WallMs: 478.78},
		{Phase: "delete_specific", Ops: 1, WallMs: 448.08},
	}
	run.Latency = Aggregate{Count: 31, MinMs: 21.4, MaxMs: 112.9, MeanMs: 68.6, TotalMs: 2128.74}
	run.Finish()
	return run
}

func TestFinish(t *testing.T) {
	run := sampleRun()
	assert.InDelta(t, 652.97+548.91+478.78+448.08, run.OverallMs, 0.001)
}

func TestPhaseLookup(t *testing.T) {
	run := sampleRun()

	p, ok := run.Phase("read_specific")
	require.True(t, ok)
	assert.Equal(t, int64(10), p.Ops)

	_, ok = run.Phase("read_all")
	assert.False(t, ok)
	assert.Zero(t, run.PhaseWallMs("read_all"))
	assert.InDelta(t, 548.91, run.PhaseWallMs("read_specific"), 0.001)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	run := sampleRun()

	path, err := Save(dir, run)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "atlas-"+run.ID+".json"), path)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, run.ID, loaded.ID)
	assert.Equal(t, run.Target, loaded.Target)
	assert.Len(t, loaded.Phases, 4)
	assert.InDelta(t, run.OverallMs, loaded.OverallMs, 0.001)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestNewRunResultIdentity(t *testing.T) {
	a := NewRunResult("x", "mock")
	b := NewRunResult("x", "mock")
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotZero(t, a.StartedAt)
}
