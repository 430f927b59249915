package models

import (
	"github.com/shopspring/decimal"
)

// Column headers of the exported index, in order.
const (
	ColumnQuantity    = "QTY"
	ColumnItemName    = "Item Name"
	ColumnSellValue   = "Sell Value"
	ColumnCategory    = "Category"
	ColumnSubCategory = "Sub-Category"
)

// ExportColumns lists the export headers in file order.
var ExportColumns = []string{ColumnQuantity, ColumnItemName, ColumnSellValue, ColumnCategory, ColumnSubCategory}

// ExportRecord is one row of an exported index.
type ExportRecord struct {
	Quantity     decimal.Decimal
	Name         string
	SellValue    SellPrice
	Section      string
	CategoryName string
}
