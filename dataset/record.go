/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dataset

import (
	"time"

	"github.com/go-openapi/strfmt"
)

// KeyField is the attribute every driver keys records by.
const KeyField = "Customer_Id"

// PriorityField is the attribute the filtered update/delete phases match on.
const PriorityField = "Order_Priority"

// Record is one e-commerce transaction, the unit every benchmark operation
// moves through a target. Attribute names follow the source dataset so the
// same record round-trips through DynamoDB, MongoDB and Cassandra columns
// without renaming.
type Record struct {
	OrderDate       string  `json:"Order_Date" bson:"Order_Date" dynamodbav:"Order_Date"`
	OrderTime       string  `json:"Time" bson:"Time" dynamodbav:"Time"`
	Aging           float64 `json:"Aging" bson:"Aging" dynamodbav:"Aging"`
	CustomerID      string  `json:"Customer_Id" bson:"Customer_Id" dynamodbav:"Customer_Id"`
	Gender          string  `json:"Gender" bson:"Gender" dynamodbav:"Gender"`
	DeviceType      string  `json:"Device_Type" bson:"Device_Type" dynamodbav:"Device_Type"`
	LoginType       string  `json:"Customer_Login_type" bson:"Customer_Login_type" dynamodbav:"Customer_Login_type"`
	ProductCategory string  `json:"Product_Category" bson:"Product_Category" dynamodbav:"Product_Category"`
	Product         string  `json:"Product" bson:"Product" dynamodbav:"Product"`
	Sales           float64 `json:"Sales" bson:"Sales" dynamodbav:"Sales"`
	Quantity        int     `json:"Quantity" bson:"Quantity" dynamodbav:"Quantity"`
	Discount        float64 `json:"Discount" bson:"Discount" dynamodbav:"Discount"`
	Profit          float64 `json:"Profit" bson:"Profit" dynamodbav:"Profit"`
	ShippingCost    float64 `json:"Shipping_Cost" bson:"Shipping_Cost" dynamodbav:"Shipping_Cost"`
	OrderPriority   string  `json:"Order_Priority" bson:"Order_Priority" dynamodbav:"Order_Priority"`
	PaymentMethod   string  `json:"Payment_method" bson:"Payment_method" dynamodbav:"Payment_method"`

	// TransactionDate is derived at load time from OrderDate and OrderTime.
	TransactionDate string `json:"Transaction_Date" bson:"Transaction_Date" dynamodbav:"Transaction_Date"`
}

// transactionLayout matches the source dataset's date and time columns
// ("2018-01-02" and "10:56:33").
const transactionLayout = "2006-01-02 15:04:05"

// TransactionTime parses the derived TransactionDate into a strfmt.DateTime.
// Returns the zero value when the field does not parse.
func (r Record) TransactionTime() strfmt.DateTime {
	t, err := time.Parse(transactionLayout, r.TransactionDate)
	if err != nil {
		return strfmt.DateTime{}
	}
	return strfmt.DateTime(t)
}
