// Package totals derives the money values shown next to the catalog: per-row
// line totals, the sell total of the visible rows, and the catalog value of
// everything owned.
package totals

import (
	"github.com/shopspring/decimal"

	"pickman/inventory-index/internal/catalog"
	"pickman/inventory-index/internal/filter"
	"pickman/inventory-index/internal/models"
)

// Row is the part of a displayed row the sell total is computed from.
type Row struct {
	Quantity  decimal.Decimal
	SellPrice models.SellPrice
}

// LineTotal returns qty times the listed price of item.
func LineTotal(qty decimal.Decimal, item models.CatalogItem) decimal.Decimal {
	return qty.Mul(catalog.UnitPrice(item))
}

// VisibleSellTotal sums quantity times sell price over rows where both are
// strictly positive and the sell price is numeric. Labels add nothing.
func VisibleSellTotal(rows []Row) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		if !r.Quantity.IsPositive() {
			continue
		}
		price, ok := r.SellPrice.Positive()
		if !ok {
			continue
		}
		total = total.Add(r.Quantity.Mul(price))
	}
	return total
}

// OverallValue sums quantity times listed price over every owned item of the
// catalog, whatever is currently displayed. It values holdings at market
// price, not at the user's sell price.
func OverallValue(items []models.CatalogItem, quantities filter.QuantitySource) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		qty := quantities.Quantity(models.ResolveKey(item))
		if !qty.IsPositive() {
			continue
		}
		total = total.Add(LineTotal(qty, item))
	}
	return total
}
