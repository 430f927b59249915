package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pickman/inventory-index/internal/inventory"
	"pickman/inventory-index/internal/models"
)

func sampleView() inventory.View {
	return inventory.View{
		Rows: []inventory.Row{
			{
				Item:          models.CatalogItem{Name: "Laser | Rifle", Trend: models.TrendUp},
				QuantityText:  "3",
				PriceText:     "1,500",
				SellText:      "2,000",
				LineTotalText: "4,500",
			},
			{
				Item:         models.CatalogItem{Name: "Med Pen", Trend: models.TrendDown},
				PriceText:    "80",
				SellText:     "N/A",
				QuantityText: "",
			},
		},
		SellTotal:    decimal.NewFromInt(6000),
		OverallValue: decimal.NewFromInt(4500),
		Status:       "Showing 2 items.",
	}
}

func TestTable(t *testing.T) {
	out := Table(sampleView())

	for _, h := range Headers {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "Laser | Rifle")
	assert.Contains(t, out, "▲")
	assert.Contains(t, out, "▼")
	assert.Contains(t, out, "Showing 2 items.")
	assert.Contains(t, out, SellTotalLabel)
	assert.Contains(t, out, "6,000")
	assert.Contains(t, out, "4,500")
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleView())

	assert.True(t, strings.HasPrefix(md, "# Inventory Index\n"))
	assert.Contains(t, md, `| 3 | Laser \| Rifle | 1,500 | ▲ | 2,000 | 4,500 |`)
	assert.Contains(t, md, "|  | Med Pen | 80 | ▼ | N/A |  |")
	assert.Contains(t, md, "- **Sell Total:** 6,000")
	assert.Contains(t, md, "- **Overall Inventory Value:** 4,500")
}

func TestGlamour(t *testing.T) {
	out, err := Glamour(Markdown(sampleView()), "notty")
	require.NoError(t, err)
	assert.Contains(t, out, "Inventory Index")
	assert.Contains(t, out, "Med Pen")
}

func TestTSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TSV(&buf, sampleView()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(Headers, "\t"), lines[0])
	assert.Equal(t, "3\tLaser | Rifle\t1,500\t▲\t2,000\t4,500", lines[1])
	assert.Equal(t, "\tMed Pen\t80\t▼\tN/A\t", lines[2])
}

func TestTrendArrow(t *testing.T) {
	assert.Contains(t, TrendArrow(models.TrendUp), "▲")
	assert.Contains(t, TrendArrow(models.TrendDown), "▼")
	assert.Contains(t, TrendArrow(models.TrendFlat), "→")
}
