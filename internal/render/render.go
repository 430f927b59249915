// Package render turns an inventory view into terminal output: a styled
// table, a markdown document, or tab-separated text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"pickman/inventory-index/internal/display"
	"pickman/inventory-index/internal/inventory"
	"pickman/inventory-index/internal/models"
)

// Column headers of the inventory view.
var Headers = []string{
	"Qty",
	"Item Name",
	"Listed Price (aUEC)",
	"Trend",
	"Sell Price (aUEC)",
	"Line Total (aUEC)",
}

// markdownWidth fits the six table columns without wrapping item names.
const markdownWidth = 160

// Labels of the two totals.
const (
	SellTotalLabel    = "Sell Total:"
	OverallValueLabel = "Overall Inventory Value:"
)

var (
	upStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	downStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	flatStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	totalStyle  = lipgloss.NewStyle().Bold(true)
)

// TrendArrow returns the coloured arrow of a trend.
func TrendArrow(t models.Trend) string {
	switch t {
	case models.TrendUp:
		return upStyle.Render(t.Arrow())
	case models.TrendDown:
		return downStyle.Render(t.Arrow())
	default:
		return flatStyle.Render(t.Arrow())
	}
}

func cells(row inventory.Row, arrow string) []string {
	return []string{
		row.QuantityText,
		row.Item.DisplayName(),
		row.PriceText,
		arrow,
		row.SellText,
		row.LineTotalText,
	}
}

// Table renders the view as a bordered table followed by the status line
// and both totals.
func Table(v inventory.View) string {
	rows := make([][]string, 0, len(v.Rows))
	for _, r := range v.Rows {
		rows = append(rows, cells(r, TrendArrow(r.Item.Trend)))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(Headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1 || col == 3:
				return cellStyle
			default:
				return numberStyle
			}
		})

	var b strings.Builder
	b.WriteString(t.String())
	b.WriteString("\n")
	b.WriteString(v.Status)
	b.WriteString("\n")
	b.WriteString(Totals(v))
	return b.String()
}

// Totals renders the sell total and the overall value on two lines.
func Totals(v inventory.View) string {
	return fmt.Sprintf("%s %s\n%s %s\n",
		SellTotalLabel, totalStyle.Render(display.Amount(v.SellTotal)),
		OverallValueLabel, totalStyle.Render(display.Amount(v.OverallValue)))
}

// Markdown renders the view as a markdown document.
func Markdown(v inventory.View) string {
	var b strings.Builder
	b.WriteString("# Inventory Index\n\n")
	b.WriteString("| " + strings.Join(Headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(Headers)) + "\n")
	for _, r := range v.Rows {
		c := cells(r, r.Item.Trend.Arrow())
		for i := range c {
			c[i] = escapeMarkdown(c[i])
		}
		b.WriteString("| " + strings.Join(c, " | ") + " |\n")
	}
	b.WriteString("\n")
	b.WriteString(v.Status + "\n\n")
	b.WriteString(TotalsMarkdown(v))
	return b.String()
}

// TotalsMarkdown renders both totals as a markdown list.
func TotalsMarkdown(v inventory.View) string {
	return fmt.Sprintf("- **%s** %s\n- **%s** %s\n",
		SellTotalLabel, display.Amount(v.SellTotal),
		OverallValueLabel, display.Amount(v.OverallValue))
}

func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// Glamour renders markdown for the terminal in the given glamour style:
// auto, dark, light, notty or ascii.
func Glamour(markdown, style string) (string, error) {
	opt := glamour.WithStandardStyle(style)
	if style == "" || style == "auto" {
		opt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(markdownWidth))
	if err != nil {
		return "", fmt.Errorf("error creating markdown renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("error rendering markdown: %w", err)
	}
	return out, nil
}

// TSV writes the view as tab-separated text with a header row.
func TSV(w io.Writer, v inventory.View) error {
	if _, err := fmt.Fprintln(w, strings.Join(Headers, "\t")); err != nil {
		return err
	}
	for _, r := range v.Rows {
		if _, err := fmt.Fprintln(w, strings.Join(cells(r, r.Item.Trend.Arrow()), "\t")); err != nil {
			return err
		}
	}
	return nil
}
