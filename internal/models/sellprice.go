package models

import (
	"github.com/shopspring/decimal"
)

// SellPriceKind tells which variant a SellPrice holds.
type SellPriceKind int

const (
	// SellPriceAbsent means no sell price was recorded.
	SellPriceAbsent SellPriceKind = iota
	// SellPriceNumeric holds a numeric price.
	SellPriceNumeric
	// SellPriceLabel holds free text such as "N/A".
	SellPriceLabel
)

// SellPrice is the user-entered sale value of one unit. It is either absent,
// a number, or an arbitrary label.
type SellPrice struct {
	kind   SellPriceKind
	amount decimal.Decimal
	label  string
}

// NoSellPrice returns the absent variant.
func NoSellPrice() SellPrice {
	return SellPrice{}
}

// NumericSellPrice returns a numeric sell price.
func NumericSellPrice(amount decimal.Decimal) SellPrice {
	return SellPrice{kind: SellPriceNumeric, amount: amount}
}

// LabelSellPrice returns a label sell price. An empty label is absent.
func LabelSellPrice(label string) SellPrice {
	if label == "" {
		return SellPrice{}
	}
	return SellPrice{kind: SellPriceLabel, label: label}
}

// Kind returns the variant held.
func (p SellPrice) Kind() SellPriceKind { return p.kind }

// IsAbsent reports whether no sell price is recorded.
func (p SellPrice) IsAbsent() bool { return p.kind == SellPriceAbsent }

// Amount returns the numeric value and true for the numeric variant.
func (p SellPrice) Amount() (decimal.Decimal, bool) {
	if p.kind != SellPriceNumeric {
		return decimal.Zero, false
	}
	return p.amount, true
}

// Label returns the label and true for the label variant.
func (p SellPrice) Label() (string, bool) {
	if p.kind != SellPriceLabel {
		return "", false
	}
	return p.label, true
}

// Positive returns the numeric value when it is strictly positive. Zero and
// negative prices count as no price for totals and display.
func (p SellPrice) Positive() (decimal.Decimal, bool) {
	if p.kind == SellPriceNumeric && p.amount.IsPositive() {
		return p.amount, true
	}
	return decimal.Zero, false
}

// Equal compares two sell prices by variant and value.
func (p SellPrice) Equal(other SellPrice) bool {
	if p.kind != other.kind {
		return false
	}
	switch p.kind {
	case SellPriceNumeric:
		return p.amount.Equal(other.amount)
	case SellPriceLabel:
		return p.label == other.label
	default:
		return true
	}
}

// String renders the raw value: "" when absent, the plain number, or the label.
func (p SellPrice) String() string {
	switch p.kind {
	case SellPriceNumeric:
		return p.amount.String()
	case SellPriceLabel:
		return p.label
	default:
		return ""
	}
}
