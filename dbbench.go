/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dbbench

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/suparena/dbbench/dataset"
	"github.com/suparena/dbbench/log"
	"github.com/suparena/dbbench/results"
	"github.com/suparena/dbbench/target"
	"github.com/suparena/dbbench/workload"
)

// Suite is a thread-safe collection of benchmark targets that runs the
// workload against each of them and collects the results.
type Suite struct {
	mu      sync.RWMutex
	targets map[string]target.Target
	order   []string

	split    dataset.Split
	opts     []workload.Option
	parallel int
}

// NewSuite creates a Suite that will drive the given dataset split through
// every registered target. The workload options apply to every run.
func NewSuite(split dataset.Split, opts ...workload.Option) *Suite {
	return &Suite{
		targets: make(map[string]target.Target),
		split:   split,
		opts:    opts,
	}
}

// SetParallelism allows up to n targets to run concurrently. The default (0)
// runs targets sequentially in registration order, which keeps runs
// comparable; raise it only when the targets do not share resources.
func (s *Suite) SetParallelism(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parallel = n
}

// Register adds a target under its name.
func (s *Suite) Register(tgt target.Target) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := tgt.Name()
	if _, exists := s.targets[name]; exists {
		return fmt.Errorf("target with name %q already registered", name)
	}
	s.targets[name] = tgt
	s.order = append(s.order, name)
	return nil
}

// Target retrieves the registered target for a given name.
func (s *Suite) Target(name string) (target.Target, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tgt, exists := s.targets[name]
	if !exists {
		return nil, fmt.Errorf("target with name %q not found", name)
	}
	return tgt, nil
}

// Names returns the registered target names in registration order.
func (s *Suite) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}

// RunAll benchmarks every registered target. A failing target does not stop
// the others; its partial result is kept and its error joined into the
// returned error.
func (s *Suite) RunAll(ctx context.Context) ([]*results.RunResult, error) {
	s.mu.RLock()
	order := append([]string(nil), s.order...)
	parallel := s.parallel
	s.mu.RUnlock()

	logger := log.WithComponent("suite")
	runs := make([]*results.RunResult, len(order))
	errs := make([]error, len(order))

	g, gctx := errgroup.WithContext(ctx)
	limit := parallel
	if limit <= 0 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, name := range order {
		g.Go(func() error {
			tgt, err := s.Target(name)
			if err != nil {
				errs[i] = err
				return nil
			}

			logger.Info().Str("target", name).Str("driver", tgt.Driver()).Msg("starting benchmark")
			if err := tgt.Ping(gctx); err != nil {
				errs[i] = fmt.Errorf("target %q unreachable: %w", name, err)
				logger.Error().Err(err).Str("target", name).Msg("ping failed")
				return nil
			}

			engine := workload.New(tgt, s.split, s.opts...)
			run, err := engine.Execute(gctx)
			runs[i] = run
			if err != nil {
				errs[i] = err
				logger.Error().Err(err).Str("target", name).Msg("benchmark failed")
				return nil
			}
			logger.Info().
				Str("target", name).
				Float64("overall_ms", run.OverallMs).
				Msg("benchmark complete")
			return nil
		})
	}
	_ = g.Wait()

	out := make([]*results.RunResult, 0, len(runs))
	for _, run := range runs {
		if run != nil {
			out = append(out, run)
		}
	}
	return out, stderrors.Join(errs...)
}

// Close closes every registered target, keeping the first error.
func (s *Suite) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var first error
	for _, name := range s.order {
		if err := s.targets[name].Close(ctx); err != nil && first == nil {
			first = fmt.Errorf("failed to close target %q: %w", name, err)
		}
	}
	s.targets = make(map[string]target.Target)
	s.order = nil
	return first
}
