/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package workload drives the benchmark phase sequence against a target and
// collects per-phase wall times plus an HDR latency histogram over the
// single-record operations.
package workload
