// Package categories implements the command that lists catalog categories.
package categories

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pickman/inventory-index/cmd/root"
	"pickman/inventory-index/internal/models"
)

var section string

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "List the category sections and subcategories of the catalog",
	Long: `List the category sections and subcategories found in the current market
catalog. The names are the values accepted by "list --category" and
"list --subcategory".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := root.LoadSession(cmd.Context())
		if err != nil {
			return err
		}
		return Print(cmd.OutOrStdout(), session.Index().Categories(), section)
	},
}

func init() {
	Cmd.Flags().StringVarP(&section, "category", "c", "", "Only list the subcategories of this section")
}

// Print writes each section followed by its indented subcategories. A
// non-empty only restricts the output to that section.
func Print(w io.Writer, idx models.CategoryIndex, only string) error {
	if only != "" {
		if _, ok := idx[only]; !ok {
			return fmt.Errorf("unknown category section %q", only)
		}
	}
	for _, s := range idx.Sections() {
		if only != "" && s != only {
			continue
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
		for _, name := range idx.Subcategories(s) {
			if _, err := fmt.Fprintf(w, "  %s\n", name); err != nil {
				return err
			}
		}
	}
	return nil
}
