/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package dbbench benchmarks CRUD and bulk-operation latency of document and
key-value databases over a common e-commerce transaction workload.

The harness runs a fixed phase sequence against each configured target:
single inserts, a chunked batch insert, a bulk reload, keyed and paged
reads, keyed and filtered updates, and keyed and filtered deletes. Every
phase is wall-timed, and the single-record operations additionally feed an
HDR latency histogram, so targets can be compared both on throughput-style
phase times and on per-operation latency percentiles.

Drivers exist for DynamoDB, MongoDB and Cassandra / Astra DB, plus an
in-memory mock for tests. New backends implement target.Target and register
themselves with the registry package.

Basic Usage:

	split := dataset.NewSplit(records, 10, 1000, 2000)
	suite := dbbench.NewSuite(split, workload.WithTargetKey("37077"))

	tgt, _ := registry.Open(cfg.Targets[0], creds)
	_ = suite.Register(tgt)

	runs, err := suite.RunAll(ctx)
	report.Render(os.Stdout, report.FormatTable, runs)

For more information, see the documentation at https://github.com/suparena/dbbench
*/
package dbbench
