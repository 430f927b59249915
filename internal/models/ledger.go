package models

import (
	"github.com/shopspring/decimal"
)

// LedgerRecord is what the user recorded for one item.
type LedgerRecord struct {
	Quantity  decimal.Decimal
	SellPrice SellPrice
}

// Prunable reports whether the record carries no information: zero quantity
// and no sell price. Such records are removed instead of being persisted.
func (r LedgerRecord) Prunable() bool {
	return r.Quantity.IsZero() && r.SellPrice.IsAbsent()
}

// Equal compares two records by value.
func (r LedgerRecord) Equal(other LedgerRecord) bool {
	return r.Quantity.Equal(other.Quantity) && r.SellPrice.Equal(other.SellPrice)
}

// Ledger maps identity keys to records. In memory it is always canonical:
// legacy entries are upgraded when the file is read.
type Ledger map[IdentityKey]LedgerRecord

// Clone returns a shallow copy; records are values so this is a full copy.
func (l Ledger) Clone() Ledger {
	out := make(Ledger, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}

// Quantity returns the recorded quantity or zero.
func (l Ledger) Quantity(key IdentityKey) decimal.Decimal {
	if rec, ok := l[key]; ok {
		return rec.Quantity
	}
	return decimal.Zero
}

// Put stores rec under key, or deletes key when rec is prunable.
func (l Ledger) Put(key IdentityKey, rec LedgerRecord) {
	if rec.Prunable() {
		delete(l, key)
		return
	}
	l[key] = rec
}
