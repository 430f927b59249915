package totals

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"pickman/inventory-index/internal/models"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func dp(v string) *decimal.Decimal {
	x := d(v)
	return &x
}

func TestSingleItemExample(t *testing.T) {
	item := models.CatalogItem{UUID: "a", Name: "A", PriceSell: dp("100"), PriceBuy: dp("80")}
	ledger := models.Ledger{
		"uuid:a": {Quantity: d("3"), SellPrice: models.NumericSellPrice(d("150"))},
	}

	assert.True(t, d("300").Equal(LineTotal(d("3"), item)))
	assert.True(t, d("450").Equal(VisibleSellTotal([]Row{{Quantity: d("3"), SellPrice: models.NumericSellPrice(d("150"))}})))
	assert.True(t, d("300").Equal(OverallValue([]models.CatalogItem{item}, ledger)))
}

func TestLineTotal_FallsBackToBuyPrice(t *testing.T) {
	item := models.CatalogItem{PriceBuy: dp("80")}
	assert.True(t, d("160").Equal(LineTotal(d("2"), item)))
	assert.True(t, LineTotal(d("2"), models.CatalogItem{}).IsZero())
}

func TestVisibleSellTotal_SkipsNonContributingRows(t *testing.T) {
	rows := []Row{
		{Quantity: d("2"), SellPrice: models.NumericSellPrice(d("10"))},
		{Quantity: d("5"), SellPrice: models.LabelSellPrice("N/A")},
		{Quantity: d("5"), SellPrice: models.NoSellPrice()},
		{Quantity: d("5"), SellPrice: models.NumericSellPrice(d("0"))},
		{Quantity: d("5"), SellPrice: models.NumericSellPrice(d("-3"))},
		{Quantity: d("0"), SellPrice: models.NumericSellPrice(d("99"))},
		{Quantity: d("-1"), SellPrice: models.NumericSellPrice(d("99"))},
		{Quantity: d("1.5"), SellPrice: models.NumericSellPrice(d("4"))},
	}

	assert.True(t, d("26").Equal(VisibleSellTotal(rows)))
	assert.True(t, VisibleSellTotal(nil).IsZero())
}

func TestOverallValue_IgnoresUnownedAndUsesListedPrice(t *testing.T) {
	items := []models.CatalogItem{
		{UUID: "a", PriceSell: dp("100")},
		{UUID: "b", PriceBuy: dp("50")},
		{UUID: "c", PriceSell: dp("1000")},
		{UUID: "d", PriceSell: dp("7")},
	}
	ledger := models.Ledger{
		"uuid:a": {Quantity: d("2"), SellPrice: models.NumericSellPrice(d("999"))},
		"uuid:b": {Quantity: d("4")},
		"uuid:c": {Quantity: d("0"), SellPrice: models.NumericSellPrice(d("5"))},
		"uuid:d": {Quantity: d("-2")},
	}

	assert.True(t, d("400").Equal(OverallValue(items, ledger)))
}
