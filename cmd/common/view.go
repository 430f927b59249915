// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pickman/inventory-index/internal/filter"
	"pickman/inventory-index/internal/inventory"
	"pickman/inventory-index/internal/models"
	"pickman/inventory-index/internal/render"
)

// Output formats of the view commands.
const (
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatTSV      = "tsv"
)

// ViewFlags select the rows of an inventory view.
type ViewFlags struct {
	Search      string
	All         bool
	Owned       bool
	Section     string
	Subcategory string
}

// Bind registers the view flags on cmd.
func (f *ViewFlags) Bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Search, "search", "s", "", "Keywords separated by spaces or commas; any match is shown")
	cmd.Flags().BoolVarP(&f.All, "all", "a", false, "Show catalog items you do not own")
	cmd.Flags().BoolVar(&f.Owned, "owned", false, "Only show items with a quantity")
	cmd.Flags().StringVarP(&f.Section, "category", "c", "", "Category section")
	cmd.Flags().StringVar(&f.Subcategory, "subcategory", "", "Subcategory name")
}

// Criteria builds the filter. Without any flag it is the home view when
// ownedByDefault is set; --all and --owned override the default.
func (f ViewFlags) Criteria(ownedByDefault bool) models.FilterCriteria {
	owned := ownedByDefault
	switch {
	case f.Owned:
		owned = true
	case f.All:
		owned = false
	}
	return models.FilterCriteria{
		Keywords:     filter.Tokenize(f.Search),
		OwnedOnly:    owned,
		Section:      f.Section,
		CategoryName: f.Subcategory,
	}
}

// WriteView writes v to w in format. style is the glamour style used for
// markdown.
func WriteView(w io.Writer, v inventory.View, format, style string) error {
	switch format {
	case "", FormatTable:
		_, err := fmt.Fprint(w, render.Table(v))
		return err
	case FormatMarkdown:
		out, err := render.Glamour(render.Markdown(v), style)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, out)
		return err
	case FormatTSV:
		return render.TSV(w, v)
	default:
		return fmt.Errorf("unknown output format %q (want %s, %s or %s)", format, FormatTable, FormatMarkdown, FormatTSV)
	}
}
