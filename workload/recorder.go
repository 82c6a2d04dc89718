/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package workload

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"github.com/suparena/dbbench/results"
)

// Histogram bounds in microseconds: 1µs to 10 minutes, 3 significant digits.
const (
	histogramMin = 1
	histogramMax = 600_000_000
	histogramSig = 3
)

// recorder accumulates per-operation latencies for the single-record phases.
// Values are recorded in microseconds and reported in milliseconds. The total
// is summed outside the histogram so it is exact rather than bucketed.
type recorder struct {
	mu    sync.Mutex
	hist  *hdrhistogram.Histogram
	total time.Duration
}

func newRecorder() *recorder {
	return &recorder{
		hist: hdrhistogram.New(histogramMin, histogramMax, histogramSig),
	}
}

func (r *recorder) record(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total += d
	// RecordValue only fails outside the histogram bounds; clamp instead of
	// losing the sample.
	us := d.Microseconds()
	if us < histogramMin {
		us = histogramMin
	}
	if us > histogramMax {
		us = histogramMax
	}
	_ = r.hist.RecordValue(us)
}

// Aggregate summarizes the recorded latencies in milliseconds.
func (r *recorder) Aggregate() results.Aggregate {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := r.hist.TotalCount()
	if count == 0 {
		return results.Aggregate{}
	}
	return results.Aggregate{
		Count:   count,
		MinMs:   float64(r.hist.Min()) / 1000,
		MaxMs:   float64(r.hist.Max()) / 1000,
		MeanMs:  r.hist.Mean() / 1000,
		P50Ms:   float64(r.hist.ValueAtQuantile(50)) / 1000,
		P95Ms:   float64(r.hist.ValueAtQuantile(95)) / 1000,
		P99Ms:   float64(r.hist.ValueAtQuantile(99)) / 1000,
		TotalMs: float64(r.total.Microseconds()) / 1000,
	}
}
