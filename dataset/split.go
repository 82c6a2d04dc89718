/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dataset

// Split partitions a dataset into the three slices the workload phases
// consume: the first records feed the single-operation phases, the next block
// feeds the chunked batch phase, and the remainder (capped) feeds the bulk
// load phase. Slices share the backing array with the source records.
type Split struct {
	Singles []Record
	Batch   []Record
	Bulk    []Record
}

// NewSplit partitions records into singles, batch and bulk slices. Each
// boundary is clamped to the records available, so a short dataset yields
// short (possibly empty) slices rather than an error.
func NewSplit(records []Record, singles, batch, bulk int) Split {
	if singles < 0 {
		singles = 0
	}
	if batch < 0 {
		batch = 0
	}
	if bulk < 0 {
		bulk = 0
	}

	a := min(singles, len(records))
	b := min(a+batch, len(records))
	c := min(b+bulk, len(records))

	return Split{
		Singles: records[:a],
		Batch:   records[a:b],
		Bulk:    records[b:c],
	}
}

// Total returns the number of records covered by the split.
func (s Split) Total() int {
	return len(s.Singles) + len(s.Batch) + len(s.Bulk)
}
