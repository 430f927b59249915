package filter

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"pickman/inventory-index/internal/models"
)

func names(items []models.CatalogItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{" , ,", nil},
		{"Laser", []string{"laser"}},
		{"laser, rifle", []string{"laser", "rifle"}},
		{"A,B  c\tD", []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.raw))
		})
	}
}

func catalogFixture() []models.CatalogItem {
	return []models.CatalogItem{
		{UUID: "1", Name: "laser Rifle", Section: "Weapons", CategoryName: "Rifles"},
		{UUID: "2", Name: "Armor Vest", Section: "Armor", CategoryName: "Torso"},
		{UUID: "3", Name: "Laser Pistol", Section: "Weapons", CategoryName: "Pistols"},
		{UUID: "4", Name: "Med Pen", Section: "Medical", CategoryName: ""},
		{UUID: "5", Name: "", Section: ""},
	}
}

func TestApply_NoCriteriaSortsByName(t *testing.T) {
	got := Apply(catalogFixture(), models.Ledger{}, models.FilterCriteria{})
	assert.Equal(t, []string{"", "Armor Vest", "Laser Pistol", "laser Rifle", "Med Pen"}, names(got))
}

func TestApply_KeywordsAreOred(t *testing.T) {
	criteria := models.FilterCriteria{Keywords: Tokenize("pistol, vest")}
	got := Apply(catalogFixture(), models.Ledger{}, criteria)
	assert.Equal(t, []string{"Armor Vest", "Laser Pistol"}, names(got))
}

func TestApply_KeywordsAreCaseInsensitive(t *testing.T) {
	got := Apply(catalogFixture(), models.Ledger{}, models.FilterCriteria{Keywords: Tokenize("LASER")})
	assert.Equal(t, []string{"Laser Pistol", "laser Rifle"}, names(got))
}

func TestApply_OwnedOnly(t *testing.T) {
	ledger := models.Ledger{
		"uuid:1": {Quantity: decimal.NewFromInt(2)},
		"uuid:2": {Quantity: decimal.NewFromInt(-1)},
		"uuid:4": {Quantity: decimal.Zero, SellPrice: models.NumericSellPrice(decimal.NewFromInt(10))},
	}

	got := Apply(catalogFixture(), ledger, models.FilterCriteria{OwnedOnly: true})

	assert.Equal(t, []string{"laser Rifle"}, names(got))
}

func TestApply_CategoryFilters(t *testing.T) {
	items := catalogFixture()

	got := Apply(items, models.Ledger{}, models.FilterCriteria{Section: "Weapons"})
	assert.Equal(t, []string{"Laser Pistol", "laser Rifle"}, names(got))

	got = Apply(items, models.Ledger{}, models.FilterCriteria{Section: "Weapons", CategoryName: "Rifles"})
	assert.Equal(t, []string{"laser Rifle"}, names(got))

	got = Apply(items, models.Ledger{}, models.FilterCriteria{CategoryName: "Torso"})
	assert.Equal(t, []string{"Armor Vest"}, names(got))

	got = Apply(items, models.Ledger{}, models.FilterCriteria{Section: "weapons"})
	assert.Empty(t, got, "section matching is exact")
}

func TestApply_StableForEqualNames(t *testing.T) {
	items := []models.CatalogItem{
		{UUID: "b", Name: "Same"},
		{UUID: "a", Name: "same"},
	}
	got := Apply(items, models.Ledger{}, models.FilterCriteria{})
	assert.Equal(t, "b", got[0].UUID)
	assert.Equal(t, "a", got[1].UUID)
}

func TestApply_ResultIsSubsetOfInput(t *testing.T) {
	items := catalogFixture()
	got := Apply(items, models.Ledger{}, models.FilterCriteria{Keywords: []string{"zzz"}})
	assert.Empty(t, got)
	assert.Len(t, items, 5)
}

func TestHomeCriteria(t *testing.T) {
	home := HomeCriteria()
	assert.True(t, home.OwnedOnly)
	assert.Empty(t, home.Keywords)
	assert.Empty(t, home.Section)
	assert.Empty(t, home.CategoryName)
}

func TestDescribe(t *testing.T) {
	assert.Empty(t, Describe(models.FilterCriteria{}))
	assert.Equal(t, []string{TagOwned}, Describe(HomeCriteria()))
	assert.Equal(t,
		[]string{TagSearch, TagOwned, TagCategory},
		Describe(models.FilterCriteria{Keywords: []string{"x"}, OwnedOnly: true, CategoryName: "Rifles"}))
}
