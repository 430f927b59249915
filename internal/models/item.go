// Package models defines the domain types shared by the inventory index:
// catalog items fetched from the pricing service, the persisted ledger, and
// the flat records exchanged with import/export files.
package models

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// IdentityKey is the stable string that joins a catalog item to its ledger
// record. See ResolveKey.
type IdentityKey string

// Key prefixes, in precedence order.
const (
	KeyPrefixUUID = "uuid:"
	KeyPrefixID   = "id:"
	KeyPrefixName = "name:"

	// UnknownItemName is used when an item has no identity field at all.
	UnknownItemName = "unknown"
)

// Trend compares the average sell price of an item with its average buy price.
type Trend int

const (
	// TrendFlat means both prices are equal or at least one is missing.
	TrendFlat Trend = iota
	// TrendUp means the sell price is above the buy price.
	TrendUp
	// TrendDown means the sell price is below the buy price.
	TrendDown
)

// Arrow returns the glyph shown next to the listed price.
func (t Trend) Arrow() string {
	switch t {
	case TrendUp:
		return "▲"
	case TrendDown:
		return "▼"
	default:
		return "→"
	}
}

// String returns a lower-case name of the trend.
func (t Trend) String() string {
	switch t {
	case TrendUp:
		return "up"
	case TrendDown:
		return "down"
	default:
		return "flat"
	}
}

// CatalogItem is one market item as published by the pricing service, plus
// the fields derived locally when the catalog index is built.
type CatalogItem struct {
	UUID       string
	ID         *int64
	Name       string
	PriceSell  *decimal.Decimal
	PriceBuy   *decimal.Decimal
	CategoryID *int64

	// Derived by catalog.Build.
	Section      string
	CategoryName string
	Trend        Trend
}

// DisplayName returns the item name, or "Item <id>" when the service sent an
// empty name.
func (i CatalogItem) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	if i.ID != nil {
		return fmt.Sprintf("Item %d", *i.ID)
	}
	return "Item None"
}

// ResolveKey derives the identity key of an item. The first present field
// wins: non-empty UUID, then numeric id (zero included), then the name.
// Saved ledgers are keyed by this string, so the precedence must never change.
func ResolveKey(item CatalogItem) IdentityKey {
	if item.UUID != "" {
		return IdentityKey(KeyPrefixUUID + item.UUID)
	}
	if item.ID != nil {
		return IdentityKey(KeyPrefixID + strconv.FormatInt(*item.ID, 10))
	}
	name := item.Name
	if name == "" {
		name = UnknownItemName
	}
	return IdentityKey(KeyPrefixName + name)
}

// Category describes one item category of the pricing service.
type Category struct {
	ID      int64
	Section string
	Name    string
}

// CategoryLookup maps a category id to its description.
type CategoryLookup map[int64]Category
