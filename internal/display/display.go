// Package display renders ledger and catalog values as the text shown to the
// user: reduced quantities, whole-number amounts with thousands separators,
// and sell prices that may be labels.
package display

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"pickman/inventory-index/internal/models"
)

// Amounts are whole aUEC with "," thousands separators and no symbol.
var amountFormatter = money.NewFormatter(0, ".", ",", "", "1")

// Quantity renders a quantity: "" for zero or negative, no decimals for whole
// numbers ("17.0" becomes "17"), otherwise the shortest exact form.
func Quantity(q decimal.Decimal) string {
	if !q.IsPositive() {
		return ""
	}
	return q.String()
}

// Amount renders d rounded half-to-even to a whole number with thousands
// separators, e.g. 1234567.5 becomes "1,234,568".
func Amount(d decimal.Decimal) string {
	return amountFormatter.Format(d.RoundBank(0).IntPart())
}

// AmountOrBlank renders d like Amount but returns "" for exactly zero, which
// is how line totals of unowned items are shown.
func AmountOrBlank(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return Amount(d)
}

// SellPrice renders a sell price cell: blank when absent or not strictly
// positive, the formatted amount for a number, or the label unchanged.
func SellPrice(p models.SellPrice) string {
	if label, ok := p.Label(); ok {
		return label
	}
	if amount, ok := p.Positive(); ok {
		return Amount(amount)
	}
	return ""
}

// Status renders the status line that summarizes the current view, e.g.
// "Showing 12 items (search, inv-filter)."
func Status(count int, tags []string) string {
	if len(tags) == 0 {
		return fmt.Sprintf("Showing %d items.", count)
	}
	return fmt.Sprintf("Showing %d items (%s).", count, strings.Join(tags, ", "))
}
