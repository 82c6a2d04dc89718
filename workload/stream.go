/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package workload

import (
	"context"
	"time"

	"github.com/suparena/dbbench/results"
)

// Event is one per-operation observation emitted while a run is streaming.
// The terminal event carries the finished RunResult (and the run error, if
// any) with an empty Phase.
type Event struct {
	Phase     Phase
	Index     int64
	Latency   time.Duration
	Err       error
	Timestamp time.Time

	// Result is set on the final event only.
	Result *results.RunResult
}

// Run executes the workload in the background and streams one Event per
// timed operation, closing the channel when the run finishes. The last event
// before close carries the RunResult.
func (e *Engine) Run(ctx context.Context) <-chan Event {
	eventCh := make(chan Event, e.opts.BufferSize)
	go e.runWorker(ctx, eventCh)
	return eventCh
}

func (e *Engine) runWorker(ctx context.Context, eventCh chan<- Event) {
	defer close(eventCh)

	var index int64
	prev := e.opts.Observer
	observe := func(target string, phase Phase, latency time.Duration, err error) {
		if prev != nil {
			prev(target, phase, latency, err)
		}
		ev := Event{
			Phase:     phase,
			Index:     index,
			Latency:   latency,
			Err:       err,
			Timestamp: time.Now(),
		}
		index++
		select {
		case eventCh <- ev:
		case <-ctx.Done():
		}
	}

	worker := &Engine{tgt: e.tgt, split: e.split, opts: e.opts}
	worker.opts.Observer = observe

	run, err := worker.Execute(ctx)
	final := Event{Err: err, Timestamp: time.Now(), Result: run, Index: index}
	select {
	case eventCh <- final:
	case <-ctx.Done():
	}
}
