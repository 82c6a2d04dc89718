/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package metrics exposes Prometheus instrumentation for long benchmark
// runs, so operation latency can be scraped while a run is in flight.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/suparena/dbbench/log"
)

var (
	opDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dbbench",
			Name:      "operation_duration_seconds",
			Help:      "Latency of individual benchmark operations.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 16),
		},
		[]string{"target", "phase"},
	)

	opTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dbbench",
			Name:      "operations_total",
			Help:      "Benchmark operations executed, by outcome.",
		},
		[]string{"target", "phase", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(opDuration, opTotal)
}

// ObserveOp records one benchmark operation.
func ObserveOp(target, phase string, d time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	opTotal.WithLabelValues(target, phase, outcome).Inc()
	if err == nil {
		opDuration.WithLabelValues(target, phase).Observe(d.Seconds())
	}
}

// Handler returns the scrape handler for the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Serve runs a /metrics listener on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())

	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger := log.WithComponent("metrics")
	logger.Info().Str("addr", addr).Msg("serving metrics")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
