/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dataset

import "testing"

func TestNewSplit(t *testing.T) {
	records := Generate(3100, 5)

	tests := []struct {
		name                  string
		singles, batch, bulk  int
		wantS, wantBa, wantBu int
	}{
		{"ReportShape", 10, 1000, 2000, 10, 1000, 2000},
		{"ShortDataset", 10, 1000, 5000, 10, 1000, 2090},
		{"ZeroBulk", 10, 1000, 0, 10, 1000, 0},
		{"NegativeClamped", -1, -1, -1, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSplit(records, tt.singles, tt.batch, tt.bulk)
			if len(s.Singles) != tt.wantS {
				t.Errorf("Singles: expected %d, got %d", tt.wantS, len(s.Singles))
			}
			if len(s.Batch) != tt.wantBa {
				t.Errorf("Batch: expected %d, got %d", tt.wantBa, len(s.Batch))
			}
			if len(s.Bulk) != tt.wantBu {
				t.Errorf("Bulk: expected %d, got %d", tt.wantBu, len(s.Bulk))
			}
			if s.Total() != tt.wantS+tt.wantBa+tt.wantBu {
				t.Errorf("Total: expected %d, got %d", tt.wantS+tt.wantBa+tt.wantBu, s.Total())
			}
		})
	}
}

func TestNewSplitTinyDataset(t *testing.T) {
	records := Generate(5, 5)
	s := NewSplit(records, 10, 1000, 2000)

	if len(s.Singles) != 5 || len(s.Batch) != 0 || len(s.Bulk) != 0 {
		t.Fatalf("Expected 5/0/0, got %d/%d/%d", len(s.Singles), len(s.Batch), len(s.Bulk))
	}
}
