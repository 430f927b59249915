// Package filter selects and orders the catalog items shown to the user.
package filter

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"pickman/inventory-index/internal/models"
)

// Status tags describing which criteria are active.
const (
	TagSearch   = "search"
	TagOwned    = "inv-filter"
	TagCategory = "category-filter"
)

// QuantitySource resolves the owned quantity of an item.
type QuantitySource interface {
	Quantity(key models.IdentityKey) decimal.Decimal
}

// Tokenize splits raw search text on whitespace and commas into lower-case
// keywords.
func Tokenize(raw string) []string {
	fields := strings.FieldsFunc(strings.ToLower(raw), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// HomeCriteria returns the default view: no search, owned items only, every
// category.
func HomeCriteria() models.FilterCriteria {
	return models.FilterCriteria{OwnedOnly: true}
}

// Apply returns the items matching every criterion, sorted by name without
// regard to case. Items with equal names keep their catalog order.
//
// An item matches the keywords when any keyword is a substring of its
// lower-cased name. OwnedOnly keeps items with a quantity above zero. Section
// and CategoryName, when set, must equal the item's labels exactly.
func Apply(items []models.CatalogItem, quantities QuantitySource, criteria models.FilterCriteria) []models.CatalogItem {
	out := make([]models.CatalogItem, 0, len(items))

	for _, item := range items {
		if !matchesKeywords(item.Name, criteria.Keywords) {
			continue
		}
		if criteria.OwnedOnly && !quantities.Quantity(models.ResolveKey(item)).IsPositive() {
			continue
		}
		if criteria.Section != "" && item.Section != criteria.Section {
			continue
		}
		if criteria.CategoryName != "" && item.CategoryName != criteria.CategoryName {
			continue
		}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// Describe returns the status tags of the active criteria, in display order.
func Describe(criteria models.FilterCriteria) []string {
	var tags []string
	if len(criteria.Keywords) > 0 {
		tags = append(tags, TagSearch)
	}
	if criteria.OwnedOnly {
		tags = append(tags, TagOwned)
	}
	if criteria.Section != "" || criteria.CategoryName != "" {
		tags = append(tags, TagCategory)
	}
	return tags
}

func matchesKeywords(name string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	lower := strings.ToLower(name)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
