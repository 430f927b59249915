package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pickman/inventory-index/internal/models"
)

func dec(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func id(v int64) *int64 {
	return &v
}

func TestBuild_AttachesCategories(t *testing.T) {
	lookup := models.CategoryLookup{
		10: {ID: 10, Section: " Armor ", Name: " Arms "},
		11: {ID: 11, Section: "Armor", Name: "Backpacks"},
		20: {ID: 20, Section: "Avionics", Name: ""},
	}
	items := []models.CatalogItem{
		{Name: "Arm Guard", CategoryID: id(10)},
		{Name: "Pack", CategoryID: id(11)},
		{Name: "Scanner", CategoryID: id(20)},
		{Name: "Mystery", CategoryID: id(99)},
		{Name: "Loose"},
	}

	idx := Build(items, lookup)

	require.Equal(t, 5, idx.Len())
	got := idx.Items()
	assert.Equal(t, "Armor", got[0].Section)
	assert.Equal(t, "Arms", got[0].CategoryName)
	assert.Equal(t, "Backpacks", got[1].CategoryName)
	assert.Equal(t, "Avionics", got[2].Section)
	assert.Equal(t, "", got[3].Section)
	assert.Equal(t, "", got[4].CategoryName)

	assert.Equal(t, []string{"Armor", "Avionics"}, idx.Categories().Sections())
	assert.Equal(t, []string{"Arms", "Backpacks"}, idx.Categories().Subcategories("Armor"))
	assert.Empty(t, idx.Categories().Subcategories("Avionics"))
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	items := []models.CatalogItem{{Name: "A", CategoryID: id(1)}}
	Build(items, models.CategoryLookup{1: {ID: 1, Section: "S", Name: "N"}})
	assert.Equal(t, "", items[0].Section)
}

func TestBuild_ClearsStaleLabels(t *testing.T) {
	items := []models.CatalogItem{{Name: "A", Section: "Old", CategoryName: "Old"}}
	idx := Build(items, nil)
	assert.Equal(t, "", idx.Items()[0].Section)
	assert.Empty(t, idx.Categories())
}

func TestTrendOf(t *testing.T) {
	tests := []struct {
		name string
		item models.CatalogItem
		want models.Trend
	}{
		{"sell above buy", models.CatalogItem{PriceSell: dec("120"), PriceBuy: dec("100")}, models.TrendUp},
		{"sell below buy", models.CatalogItem{PriceSell: dec("80"), PriceBuy: dec("100")}, models.TrendDown},
		{"equal", models.CatalogItem{PriceSell: dec("100"), PriceBuy: dec("100.0")}, models.TrendFlat},
		{"missing buy", models.CatalogItem{PriceSell: dec("100")}, models.TrendFlat},
		{"missing sell", models.CatalogItem{PriceBuy: dec("100")}, models.TrendFlat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrendOf(tt.item))
			assert.Equal(t, tt.want, Build([]models.CatalogItem{tt.item}, nil).Items()[0].Trend)
		})
	}
}

func TestUnitPrice(t *testing.T) {
	assert.True(t, decimal.NewFromInt(100).Equal(UnitPrice(models.CatalogItem{PriceSell: dec("100"), PriceBuy: dec("80")})))
	assert.True(t, decimal.NewFromInt(80).Equal(UnitPrice(models.CatalogItem{PriceBuy: dec("80")})))
	assert.True(t, decimal.Zero.Equal(UnitPrice(models.CatalogItem{PriceSell: dec("0"), PriceBuy: dec("80")})), "zero sell price still wins")
	assert.True(t, UnitPrice(models.CatalogItem{}).IsZero())
}

func TestByName(t *testing.T) {
	idx := Build([]models.CatalogItem{
		{UUID: "first", Name: "Dup"},
		{UUID: "second", Name: "Dup"},
		{UUID: "anon"},
		{UUID: "u", Name: "Unique"},
	}, nil)

	byName := idx.ByName()

	assert.Len(t, byName, 2)
	assert.Equal(t, "second", byName["Dup"].UUID)
	assert.NotContains(t, byName, "")
}

func TestNilIndex(t *testing.T) {
	var idx *Index
	assert.Equal(t, 0, idx.Len())
	assert.Nil(t, idx.Items())
	assert.Empty(t, idx.Categories())
	assert.Empty(t, idx.ByName())
}
