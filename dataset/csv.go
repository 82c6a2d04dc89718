/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a transactions CSV file and returns cleaned records.
func LoadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %q: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// ReadCSV parses transaction records from r. The first row must be a header;
// columns are matched by name so column order does not matter. Cleaning rules:
//   - Customer_Id is always coerced to a string
//   - missing or non-finite numeric cells become 0
//   - missing string cells become "N/A"
//   - Order_Date and Time merge into Transaction_Date
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	if _, ok := cols[KeyField]; !ok {
		return nil, fmt.Errorf("CSV header missing required column %q", KeyField)
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		cell := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		rec := Record{
			OrderDate:       cleanString(cell("Order_Date")),
			OrderTime:       cleanString(cell("Time")),
			Aging:           cleanFloat(cell("Aging")),
			CustomerID:      cleanID(cell(KeyField)),
			Gender:          cleanString(cell("Gender")),
			DeviceType:      cleanString(cell("Device_Type")),
			LoginType:       cleanString(cell("Customer_Login_type")),
			ProductCategory: cleanString(cell("Product_Category")),
			Product:         cleanString(cell("Product")),
			Sales:           cleanFloat(cell("Sales")),
			Quantity:        int(cleanFloat(cell("Quantity"))),
			Discount:        cleanFloat(cell("Discount")),
			Profit:          cleanFloat(cell("Profit")),
			ShippingCost:    cleanFloat(cell("Shipping_Cost")),
			OrderPriority:   cleanString(cell(PriorityField)),
			PaymentMethod:   cleanString(cell("Payment_method")),
		}
		rec.TransactionDate = mergeTransactionDate(rec.OrderDate, rec.OrderTime)
		records = append(records, rec)
	}
	return records, nil
}

// cleanID coerces the customer identifier to a plain string. Spreadsheet
// exports sometimes render integer IDs as "37077.0".
func cleanID(v string) string {
	if v == "" {
		return "N/A"
	}
	return strings.TrimSuffix(v, ".0")
}

func cleanString(v string) string {
	if v == "" || strings.EqualFold(v, "nan") {
		return "N/A"
	}
	return v
}

func cleanFloat(v string) float64 {
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func mergeTransactionDate(date, clock string) string {
	if date == "N/A" || clock == "N/A" {
		return "N/A"
	}
	return date + " " + clock
}

// WriteCSV writes records in the source dataset's column layout, header first.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.OrderDate,
			rec.OrderTime,
			formatFloat(rec.Aging),
			rec.CustomerID,
			rec.Gender,
			rec.DeviceType,
			rec.LoginType,
			rec.ProductCategory,
			rec.Product,
			formatFloat(rec.Sales),
			strconv.Itoa(rec.Quantity),
			formatFloat(rec.Discount),
			formatFloat(rec.Profit),
			formatFloat(rec.ShippingCost),
			rec.OrderPriority,
			rec.PaymentMethod,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

var csvHeader = []string{
	"Order_Date", "Time", "Aging", "Customer_Id", "Gender", "Device_Type",
	"Customer_Login_type", "Product_Category", "Product", "Sales", "Quantity",
	"Discount", "Profit", "Shipping_Cost", "Order_Priority", "Payment_method",
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
