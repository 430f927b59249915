// Package inventory runs the reconciliation pipeline the user interacts
// with: the catalog index, the filtered view with its totals, and edits of
// quantities and sell prices.
package inventory

import (
	"strings"

	"github.com/shopspring/decimal"

	"pickman/inventory-index/internal/catalog"
	"pickman/inventory-index/internal/display"
	"pickman/inventory-index/internal/filter"
	"pickman/inventory-index/internal/logging"
	"pickman/inventory-index/internal/models"
	"pickman/inventory-index/internal/store"
	"pickman/inventory-index/internal/totals"
)

// Row is one displayed catalog item with its ledger values.
type Row struct {
	Item      models.CatalogItem
	Key       models.IdentityKey
	Quantity  decimal.Decimal
	SellPrice models.SellPrice
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal

	QuantityText  string
	PriceText     string
	SellText      string
	LineTotalText string
}

// View is the filtered catalog with the totals shown under it.
type View struct {
	Criteria     models.FilterCriteria
	Rows         []Row
	SellTotal    decimal.Decimal
	OverallValue decimal.Decimal
	Status       string
}

// RowUpdate carries the normalized text of an edited row. Callers render it
// as is; it is never fed back as a new edit.
type RowUpdate struct {
	Key           models.IdentityKey
	QuantityText  string
	SellText      string
	LineTotalText string
	Removed       bool
	OverallValue  decimal.Decimal
}

// Session binds the ledger store to the current catalog.
type Session struct {
	store  *store.InventoryStore
	index  *catalog.Index
	logger logging.Logger
}

// NewSession creates a session with an empty catalog.
func NewSession(s *store.InventoryStore, logger logging.Logger) *Session {
	return &Session{
		store:  s,
		index:  catalog.Build(nil, nil),
		logger: logger,
	}
}

// Refresh rebuilds the catalog index from freshly fetched data.
func (s *Session) Refresh(items []models.CatalogItem, categories models.CategoryLookup) {
	s.index = catalog.Build(items, categories)
	s.logger.Debug("Catalog index rebuilt",
		logging.F(logging.FieldCount, s.index.Len()),
		logging.F("sections", len(s.index.Categories())))
}

// Index returns the current catalog index.
func (s *Session) Index() *catalog.Index {
	return s.index
}

// Store returns the ledger store.
func (s *Session) Store() *store.InventoryStore {
	return s.store
}

// View filters the catalog and computes the totals for criteria. The sell
// total covers the visible rows only; the overall value covers the whole
// catalog.
func (s *Session) View(criteria models.FilterCriteria) View {
	visible := filter.Apply(s.index.Items(), s.store, criteria)

	rows := make([]Row, 0, len(visible))
	sellRows := make([]totals.Row, 0, len(visible))
	for _, item := range visible {
		row := s.row(item)
		rows = append(rows, row)
		sellRows = append(sellRows, totals.Row{Quantity: row.Quantity, SellPrice: row.SellPrice})
	}

	return View{
		Criteria:     criteria,
		Rows:         rows,
		SellTotal:    totals.VisibleSellTotal(sellRows),
		OverallValue: totals.OverallValue(s.index.Items(), s.store),
		Status:       display.Status(len(rows), filter.Describe(criteria)),
	}
}

func (s *Session) row(item models.CatalogItem) Row {
	key := models.ResolveKey(item)
	rec, _ := s.store.Record(key)
	unit := catalog.UnitPrice(item)
	line := totals.LineTotal(rec.Quantity, item)

	return Row{
		Item:          item,
		Key:           key,
		Quantity:      rec.Quantity,
		SellPrice:     rec.SellPrice,
		UnitPrice:     unit,
		LineTotal:     line,
		QuantityText:  display.Quantity(rec.Quantity),
		PriceText:     display.Amount(unit),
		SellText:      display.SellPrice(rec.SellPrice),
		LineTotalText: display.AmountOrBlank(line),
	}
}

// SetQuantity records raw as the quantity of item and returns the row text
// to render.
func (s *Session) SetQuantity(item models.CatalogItem, raw string) RowUpdate {
	change := s.store.PlanQuantity(models.ResolveKey(item), raw)
	s.store.Commit(change)
	return s.update(item, change)
}

// SetSellPrice records raw as the sell price of item and returns the row
// text to render.
func (s *Session) SetSellPrice(item models.CatalogItem, raw string) RowUpdate {
	change := s.store.PlanSellPrice(models.ResolveKey(item), raw)
	s.store.Commit(change)
	return s.update(item, change)
}

func (s *Session) update(item models.CatalogItem, change store.Change) RowUpdate {
	row := s.row(item)
	s.logger.Debug("Inventory updated",
		logging.F(logging.FieldKey, string(change.Key)),
		logging.F(logging.FieldItem, item.DisplayName()),
		logging.F("removed", change.Removes()))

	return RowUpdate{
		Key:           change.Key,
		QuantityText:  row.QuantityText,
		SellText:      row.SellText,
		LineTotalText: row.LineTotalText,
		Removed:       change.Removes(),
		OverallValue:  totals.OverallValue(s.index.Items(), s.store),
	}
}

// Find resolves ref to a catalog item. ref may be an identity key such as
// "uuid:..." or "id:12", an exact item name, or a name differing only in
// case. The first item in catalog order wins.
func (s *Session) Find(ref string) (models.CatalogItem, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.CatalogItem{}, false
	}
	items := s.index.Items()
	for _, item := range items {
		if string(models.ResolveKey(item)) == ref {
			return item, true
		}
	}
	for _, item := range items {
		if item.Name == ref {
			return item, true
		}
	}
	for _, item := range items {
		if strings.EqualFold(item.Name, ref) {
			return item, true
		}
	}
	return models.CatalogItem{}, false
}
