/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
)

// Aggregate summarizes the individual operation latencies of a run: the
// single-record inserts, the repeated point reads and updates, and the
// single-record delete. Values are milliseconds.
type Aggregate struct {
	Count   int64   `json:"count"`
	MinMs   float64 `json:"minMs"`
	MaxMs   float64 `json:"maxMs"`
	MeanMs  float64 `json:"meanMs"`
	P50Ms   float64 `json:"p50Ms"`
	P95Ms   float64 `json:"p95Ms"`
	P99Ms   float64 `json:"p99Ms"`
	TotalMs float64 `json:"totalMs"`
}

// PhaseResult is the wall-clock outcome of one workload phase.
type PhaseResult struct {
	Phase  string  `json:"phase"`
	Ops    int64   `json:"ops"`
	WallMs float64 `json:"wallMs"`
	Error  string  `json:"error,omitempty"`
}

// RunResult is one benchmark run against one target.
type RunResult struct {
	ID        string          `json:"id"`
	Target    string          `json:"target"`
	Driver    string          `json:"driver"`
	StartedAt strfmt.DateTime `json:"startedAt"`
	Phases    []PhaseResult   `json:"phases"`
	Latency   Aggregate       `json:"latency"`
	OverallMs float64         `json:"overallMs"`
}

// NewRunResult starts a result for the given target.
func NewRunResult(target, driver string) *RunResult {
	return &RunResult{
		ID:        uuid.NewString(),
		Target:    target,
		Driver:    driver,
		StartedAt: strfmt.DateTime(time.Now().UTC()),
	}
}

// Phase returns the named phase result, if the run reached it.
func (r *RunResult) Phase(name string) (PhaseResult, bool) {
	for _, p := range r.Phases {
		if p.Phase == name {
			return p, true
		}
	}
	return PhaseResult{}, false
}

// PhaseWallMs returns the named phase's wall time, or 0 when absent.
func (r *RunResult) PhaseWallMs(name string) float64 {
	p, _ := r.Phase(name)
	return p.WallMs
}

// Finish computes the overall wall time across all completed phases.
func (r *RunResult) Finish() {
	var total float64
	for _, p := range r.Phases {
		total += p.WallMs
	}
	r.OverallMs = total
}

// Save writes the run as indented JSON under dir, named by target and run ID.
// Returns the written path.
func Save(dir string, run *RunResult) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create results dir: %w", err)
	}
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode run: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.json", run.Target, run.ID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write run: %w", err)
	}
	return path, nil
}

// Load reads a saved run.
func Load(path string) (*RunResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run %q: %w", path, err)
	}
	var run RunResult
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to decode run %q: %w", path, err)
	}
	return &run, nil
}
