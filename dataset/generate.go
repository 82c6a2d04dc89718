/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dataset

import (
	"fmt"
	"math/rand"
	"time"
)

// firstCustomerID anchors synthetic customer IDs. IDs are assigned
// sequentially from here, so any run with at least 78 records contains the
// default lookup key "37077".
const firstCustomerID = 37000

var (
	genders    = []string{"Male", "Female"}
	devices    = []string{"Web", "Mobile"}
	logins     = []string{"Member", "Guest", "First SignUp"}
	priorities = []string{"Low", "Medium", "High", "Critical"}
	payments   = []string{"credit_card", "debit_card", "money_order", "e_wallet"}

	products = map[string][]string{
		"Auto & Accessories": {"Car Media Players", "Car Speakers", "Bike Tyres", "Car Body Covers"},
		"Fashion":            {"T - Shirts", "Running Shoes", "Jeans", "Watches", "Sneakers"},
		"Electronic":         {"Keyboard", "Mouse", "Apple Laptop", "Samsung Mobile"},
		"Home & Furniture":   {"Sofa Covers", "Curtains", "Towels", "Bean Bags"},
	}
)

// Generate produces n deterministic synthetic transactions for the given
// seed. Equal seeds yield byte-identical datasets.
func Generate(n int, seed int64) []Record {
	rng := rand.New(rand.NewSource(seed))

	categories := make([]string, 0, len(products))
	for c := range products {
		categories = append(categories, c)
	}
	// Map iteration order is random; sort for determinism.
	for i := 1; i < len(categories); i++ {
		for j := i; j > 0 && categories[j-1] > categories[j]; j-- {
			categories[j-1], categories[j] = categories[j], categories[j-1]
		}
	}

	base := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	records := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		category := categories[rng.Intn(len(categories))]
		names := products[category]

		when := base.Add(time.Duration(rng.Intn(365*24)) * time.Hour).
			Add(time.Duration(rng.Intn(3600)) * time.Second)
		sales := 30 + rng.Float64()*220
		discount := float64(rng.Intn(6)) * 0.1
		profit := sales * (0.2 + rng.Float64()*0.4)

		rec := Record{
			OrderDate:       when.Format("2006-01-02"),
			OrderTime:       when.Format("15:04:05"),
			Aging:           float64(1 + rng.Intn(10)),
			CustomerID:      fmt.Sprintf("%d", firstCustomerID+i),
			Gender:          genders[rng.Intn(len(genders))],
			DeviceType:      devices[rng.Intn(len(devices))],
			LoginType:       logins[rng.Intn(len(logins))],
			ProductCategory: category,
			Product:         names[rng.Intn(len(names))],
			Sales:           round2(sales),
			Quantity:        1 + rng.Intn(5),
			Discount:        round2(discount),
			Profit:          round2(profit),
			ShippingCost:    round2(profit * 0.1),
			OrderPriority:   priorities[rng.Intn(len(priorities))],
			PaymentMethod:   payments[rng.Intn(len(payments))],
		}
		rec.TransactionDate = mergeTransactionDate(rec.OrderDate, rec.OrderTime)
		records = append(records, rec)
	}
	return records
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}
