/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package report renders benchmark run results as terminal tables, Markdown,
// CSV or JSON, including the cross-target comparison of the four headline
// single-record metrics.
package report
