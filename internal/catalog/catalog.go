// Package catalog derives the per-item fields the rest of the application
// relies on (category labels, price trend) and indexes the catalog by section.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"pickman/inventory-index/internal/models"
)

// Index is the catalog as of the last refresh. It is rebuilt wholesale on
// every refresh and never mutated afterwards.
type Index struct {
	items      []models.CatalogItem
	categories models.CategoryIndex
}

// Build copies items, attaches their category labels and trend, and collects
// the section / sub-category index. Items whose category is unknown get empty
// labels and are left out of the section index.
func Build(items []models.CatalogItem, categories models.CategoryLookup) *Index {
	idx := &Index{
		items:      make([]models.CatalogItem, 0, len(items)),
		categories: models.CategoryIndex{},
	}

	for _, item := range items {
		item.Section, item.CategoryName = "", ""
		if item.CategoryID != nil {
			if cat, ok := categories[*item.CategoryID]; ok {
				item.Section = strings.TrimSpace(cat.Section)
				item.CategoryName = strings.TrimSpace(cat.Name)
			}
		}
		item.Trend = TrendOf(item)

		idx.categories.Add(item.Section, item.CategoryName)
		idx.items = append(idx.items, item)
	}

	return idx
}

// Items returns the enriched catalog in source order.
func (i *Index) Items() []models.CatalogItem {
	if i == nil {
		return nil
	}
	return i.items
}

// Len returns the number of catalog items.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.items)
}

// Categories returns the section to sub-category index.
func (i *Index) Categories() models.CategoryIndex {
	if i == nil {
		return models.CategoryIndex{}
	}
	return i.categories
}

// ByName maps item names to items for import matching. Empty names are
// skipped and the last item with a given name wins.
func (i *Index) ByName() map[string]models.CatalogItem {
	out := make(map[string]models.CatalogItem, i.Len())
	for _, item := range i.Items() {
		if item.Name == "" {
			continue
		}
		out[item.Name] = item
	}
	return out
}

// UnitPrice returns the listed price of an item: the average sell price,
// else the average buy price, else zero.
func UnitPrice(item models.CatalogItem) decimal.Decimal {
	if item.PriceSell != nil {
		return *item.PriceSell
	}
	if item.PriceBuy != nil {
		return *item.PriceBuy
	}
	return decimal.Zero
}

// TrendOf compares the average sell and buy prices of an item.
func TrendOf(item models.CatalogItem) models.Trend {
	if item.PriceSell == nil || item.PriceBuy == nil {
		return models.TrendFlat
	}
	switch item.PriceSell.Cmp(*item.PriceBuy) {
	case 1:
		return models.TrendUp
	case -1:
		return models.TrendDown
	default:
		return models.TrendFlat
	}
}
