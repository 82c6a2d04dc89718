/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package workload

import (
	"time"

	"github.com/suparena/dbbench/config"
)

// ProgressHandler is invoked after each phase completes with the phase name
// and its wall time.
type ProgressHandler func(phase Phase, wall time.Duration)

// ErrorHandler is invoked when an operation fails after retries. Returning
// true continues the run with the remaining phases; returning false aborts
// the run for this target.
type ErrorHandler func(phase Phase, err error) bool

// Observer is invoked once per timed operation with its latency. It is the
// hook the metrics layer attaches to.
type Observer func(target string, phase Phase, latency time.Duration, err error)

// Options control how an Engine drives a target.
type Options struct {
	TargetKey         string
	ReadRepetitions   int
	UpdateRepetitions int
	PageLimit         int
	BatchChunk        int
	BufferSize        int
	MaxRetries        int
	RetryBackoff      time.Duration

	ProgressHandler ProgressHandler
	ErrorHandler    ErrorHandler
	Observer        Observer
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the option set matching config.Default().
func DefaultOptions() Options {
	return Options{
		TargetKey:         "37077",
		ReadRepetitions:   10,
		UpdateRepetitions: 10,
		PageLimit:         1000,
		BatchChunk:        100,
		BufferSize:        64,
		MaxRetries:        3,
		RetryBackoff:      time.Second,
	}
}

// OptionsFromConfig maps a workload config block onto Options.
func OptionsFromConfig(wc config.WorkloadConfig) []Option {
	return []Option{
		WithTargetKey(wc.TargetKey),
		WithReadRepetitions(wc.ReadRepetitions),
		WithUpdateRepetitions(wc.UpdateRepetitions),
		WithPageLimit(wc.PageLimit),
		WithBatchChunk(wc.BatchChunk),
		WithMaxRetries(wc.MaxRetries),
		WithRetryBackoff(wc.RetryBackoff),
	}
}

// WithTargetKey sets the customer id used by the *_specific phases.
func WithTargetKey(key string) Option {
	return func(o *Options) {
		if key != "" {
			o.TargetKey = key
		}
	}
}

// WithReadRepetitions sets how many times read_specific looks up the key.
func WithReadRepetitions(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.ReadRepetitions = n
		}
	}
}

// WithUpdateRepetitions sets how many times update_specific rewrites the key.
func WithUpdateRepetitions(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.UpdateRepetitions = n
		}
	}
}

// WithPageLimit caps the number of records read_all fetches.
func WithPageLimit(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.PageLimit = n
		}
	}
}

// WithBatchChunk sets the slice size insert_multiple hands to InsertMany.
func WithBatchChunk(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.BatchChunk = n
		}
	}
}

// WithBufferSize sets the event channel capacity used by Run.
func WithBufferSize(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.BufferSize = n
		}
	}
}

// WithMaxRetries sets how many times a throttled operation is retried.
func WithMaxRetries(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.MaxRetries = n
		}
	}
}

// WithRetryBackoff sets the base delay between retries. The delay grows
// linearly with the attempt number.
func WithRetryBackoff(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.RetryBackoff = d
		}
	}
}

// WithProgressHandler sets the per-phase completion callback.
func WithProgressHandler(h ProgressHandler) Option {
	return func(o *Options) { o.ProgressHandler = h }
}

// WithErrorHandler sets the failure policy callback.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *Options) { o.ErrorHandler = h }
}

// WithObserver sets the per-operation latency callback.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}
