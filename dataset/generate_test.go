/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dataset

import "testing"

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(200, 42)
	b := Generate(200, 42)

	if len(a) != 200 || len(b) != 200 {
		t.Fatalf("Expected 200 records, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Record %d differs across runs with equal seed", i)
		}
	}

	c := Generate(200, 43)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Different seeds should produce different datasets")
	}
}

func TestGenerateContainsDefaultLookupKey(t *testing.T) {
	records := Generate(100, 1)

	found := false
	for _, rec := range records {
		if rec.CustomerID == "37077" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected synthetic dataset to contain customer 37077")
	}
}

func TestGenerateFieldSanity(t *testing.T) {
	for _, rec := range Generate(50, 9) {
		if rec.CustomerID == "" || rec.CustomerID == "N/A" {
			t.Fatalf("Generated record missing customer ID: %+v", rec)
		}
		if rec.Sales <= 0 {
			t.Fatalf("Generated record has non-positive sales: %+v", rec)
		}
		if rec.Quantity < 1 {
			t.Fatalf("Generated record has zero quantity: %+v", rec)
		}
		if rec.TransactionDate == "N/A" {
			t.Fatalf("Generated record missing transaction date: %+v", rec)
		}
	}
}
