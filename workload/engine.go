/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package workload

import (
	"context"
	"fmt"
	"time"

	"github.com/suparena/dbbench/dataset"
	"github.com/suparena/dbbench/errors"
	"github.com/suparena/dbbench/results"
	"github.com/suparena/dbbench/target"
)

// Field values the update and delete phases write and filter on, matching the
// original benchmark's workload.
const (
	updatedPriority   = "High"
	matchedPriority   = "Medium"
	rewrittenPriority = "Standard"
)

// Engine drives the full phase sequence against one target.
type Engine struct {
	tgt   target.Target
	split dataset.Split
	opts  Options
}

// New creates an Engine for the given target and dataset split.
func New(tgt target.Target, split dataset.Split, opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{tgt: tgt, split: split, opts: o}
}

// Execute runs every phase in order and returns the populated run result.
//
// The result is returned even on failure: phases completed before the error
// keep their timings, and the failed phase carries the error text. Whether a
// failed phase aborts the run is decided by the configured ErrorHandler; with
// no handler the run aborts.
func (e *Engine) Execute(ctx context.Context) (*results.RunResult, error) {
	run := results.NewRunResult(e.tgt.Name(), e.tgt.Driver())
	rec := newRecorder()

	for _, phase := range Phases() {
		start := time.Now()
		ops, err := e.runPhase(ctx, phase, rec)
		wall := time.Since(start)

		pr := results.PhaseResult{
			Phase:  string(phase),
			Ops:    ops,
			WallMs: float64(wall.Microseconds()) / 1000,
		}
		if err != nil {
			pr.Error = err.Error()
		}
		run.Phases = append(run.Phases, pr)

		if e.opts.ProgressHandler != nil {
			e.opts.ProgressHandler(phase, wall)
		}
		if err != nil {
			if e.opts.ErrorHandler != nil && e.opts.ErrorHandler(phase, err) {
				continue
			}
			run.Latency = rec.Aggregate()
			run.Finish()
			return run, fmt.Errorf("phase %s on target %q: %w", phase, e.tgt.Name(), err)
		}
	}

	run.Latency = rec.Aggregate()
	run.Finish()
	return run, nil
}

func (e *Engine) runPhase(ctx context.Context, phase Phase, rec *recorder) (int64, error) {
	switch phase {
	case PhaseInsertSingle:
		for i, r := range e.split.Singles {
			if _, err := e.op(ctx, phase, rec, func(ctx context.Context) error {
				return e.tgt.InsertOne(ctx, r)
			}); err != nil {
				return int64(i), err
			}
		}
		return int64(len(e.split.Singles)), nil

	case PhaseInsertMultiple:
		var done int64
		for _, chunk := range chunkRecords(e.split.Batch, e.opts.BatchChunk) {
			if _, err := e.op(ctx, phase, rec, func(ctx context.Context) error {
				return e.tgt.InsertMany(ctx, chunk)
			}); err != nil {
				return done, err
			}
			done += int64(len(chunk))
		}
		return done, nil

	case PhaseInsertAll:
		// Clear first so the bulk load is measured from empty, then reload
		// the full dataset so the later lookup phases still find their key.
		// The truncate is not part of the measured work.
		if err := e.tgt.Truncate(ctx); err != nil {
			return 0, err
		}
		all := e.allRecords()
		if _, err := e.op(ctx, phase, rec, func(ctx context.Context) error {
			return e.tgt.InsertMany(ctx, all)
		}); err != nil {
			return 0, err
		}
		return int64(len(all)), nil

	case PhaseReadSpecific:
		for i := 0; i < e.opts.ReadRepetitions; i++ {
			if _, err := e.op(ctx, phase, rec, func(ctx context.Context) error {
				_, err := e.tgt.FindOne(ctx, e.opts.TargetKey)
				return err
			}); err != nil {
				return int64(i), err
			}
		}
		return int64(e.opts.ReadRepetitions), nil

	case PhaseReadAll:
		var fetched int64
		if _, err := e.op(ctx, phase, rec, func(ctx context.Context) error {
			page, err := e.tgt.FindPage(ctx, e.opts.PageLimit)
			fetched = int64(len(page))
			return err
		}); err != nil {
			return 0, err
		}
		return fetched, nil

	case PhaseUpdateSpecific:
		fields := map[string]any{dataset.PriorityField: updatedPriority}
		for i := 0; i < e.opts.UpdateRepetitions; i++ {
			if _, err := e.op(ctx, phase, rec, func(ctx context.Context) error {
				return e.tgt.UpdateOne(ctx, e.opts.TargetKey, fields)
			}); err != nil {
				return int64(i), err
			}
		}
		return int64(e.opts.UpdateRepetitions), nil

	case PhaseUpdateMany:
		var touched int64
		if _, err := e.op(ctx, phase, rec, func(ctx context.Context) error {
			n, err := e.tgt.UpdateMany(ctx, dataset.PriorityField, matchedPriority,
				map[string]any{dataset.PriorityField: rewrittenPriority})
			touched = n
			return err
		}); err != nil {
			return 0, err
		}
		return touched, nil

	case PhaseDeleteSpecific:
		if _, err := e.op(ctx, phase, rec, func(ctx context.Context) error {
			return e.tgt.DeleteOne(ctx, e.opts.TargetKey)
		}); err != nil {
			return 0, err
		}
		return 1, nil

	case PhaseDeleteMany:
		var removed int64
		if _, err := e.op(ctx, phase, rec, func(ctx context.Context) error {
			n, err := e.tgt.DeleteMany(ctx, dataset.PriorityField, rewrittenPriority)
			removed = n
			return err
		}); err != nil {
			return 0, err
		}
		return removed, nil

	default:
		return 0, errors.NewUnsupportedError(e.tgt.Driver(), string(phase))
	}
}

// op times one operation, retrying throttled failures with a linearly growing
// backoff. Successful single-record latencies feed the aggregate recorder.
func (e *Engine) op(ctx context.Context, phase Phase, rec *recorder, fn func(context.Context) error) (time.Duration, error) {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)

	for attempt := 0; attempt < e.opts.MaxRetries && errors.IsThrottled(err); attempt++ {
		if serr := sleep(ctx, e.opts.RetryBackoff*time.Duration(attempt+1)); serr != nil {
			err = serr
			break
		}
		start = time.Now()
		err = fn(ctx)
		elapsed = time.Since(start)
	}

	if e.opts.Observer != nil {
		e.opts.Observer(e.tgt.Name(), phase, elapsed, err)
	}
	if err == nil && phase.recorded() {
		rec.record(elapsed)
	}
	return elapsed, err
}

func (e *Engine) allRecords() []dataset.Record {
	all := make([]dataset.Record, 0, e.split.Total())
	all = append(all, e.split.Singles...)
	all = append(all, e.split.Batch...)
	all = append(all, e.split.Bulk...)
	return all
}

func chunkRecords(recs []dataset.Record, size int) [][]dataset.Record {
	if size <= 0 {
		size = len(recs)
	}
	var chunks [][]dataset.Record
	for len(recs) > 0 {
		n := min(size, len(recs))
		chunks = append(chunks, recs[:n])
		recs = recs[n:]
	}
	return chunks
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
