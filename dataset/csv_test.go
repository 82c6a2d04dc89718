/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dataset

import (
	"bytes"
	"strings"
	"testing"
)

const sampleCSV = `Order_Date,Time,Aging,Customer_Id,Gender,Device_Type,Customer_Login_type,Product_Category,Product,Sales,Quantity,Discount,Profit,Shipping_Cost,Order_Priority,Payment_method
2018-01-02,10:56:33,8,37077,Female,Web,Member,Auto & Accessories,Car Media Players,140,1,0.3,46,4.6,Medium,credit_card
2018-07-24,20:57:27,2,41066.0,Male,Web,Member,Fashion,Watches,,1,0.1,,11.2,,money_order
2018-11-08,08:38:49,NaN,19325,Male,Mobile,Guest,Electronic,Keyboard,48.5,2,0,12.1,1.2,High,e_wallet
`

func TestReadCSV(t *testing.T) {
	records, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}

	t.Run("CleanRow", func(t *testing.T) {
		rec := records[0]
		if rec.CustomerID != "37077" {
			t.Errorf("Expected Customer_Id 37077, got %q", rec.CustomerID)
		}
		if rec.Sales != 140 {
			t.Errorf("Expected Sales 140, got %v", rec.Sales)
		}
		if rec.TransactionDate != "2018-01-02 10:56:33" {
			t.Errorf("Unexpected Transaction_Date: %q", rec.TransactionDate)
		}
		if rec.TransactionTime().String() == (Record{}).TransactionTime().String() {
			t.Error("Expected a parseable transaction time")
		}
	})

	t.Run("IDCoercion", func(t *testing.T) {
		if records[1].CustomerID != "41066" {
			t.Errorf("Expected float-rendered ID coerced to 41066, got %q", records[1].CustomerID)
		}
	})

	t.Run("MissingNumerics", func(t *testing.T) {
		rec := records[1]
		if rec.Sales != 0 || rec.Profit != 0 {
			t.Errorf("Expected missing numerics zeroed, got Sales=%v Profit=%v", rec.Sales, rec.Profit)
		}
	})

	t.Run("MissingStrings", func(t *testing.T) {
		if records[1].OrderPriority != "N/A" {
			t.Errorf("Expected missing Order_Priority to become N/A, got %q", records[1].OrderPriority)
		}
	})

	t.Run("NaNCells", func(t *testing.T) {
		if records[2].Aging != 0 {
			t.Errorf("Expected NaN Aging zeroed, got %v", records[2].Aging)
		}
	})
}

func TestReadCSVMissingKeyColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Order_Date,Sales\n2018-01-02,140\n"))
	if err == nil {
		t.Fatal("Expected error for CSV without Customer_Id column")
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	records := Generate(25, 7)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	loaded, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if len(loaded) != len(records) {
		t.Fatalf("Expected %d records back, got %d", len(records), len(loaded))
	}
	for i := range records {
		if loaded[i] != records[i] {
			t.Fatalf("Record %d changed across write/read:\n  wrote %+v\n  read  %+v", i, records[i], loaded[i])
		}
	}
}
