// Package set implements the commands that edit a ledger record.
package set

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pickman/inventory-index/cmd/root"
	"pickman/inventory-index/internal/display"
	"pickman/inventory-index/internal/inventory"
	"pickman/inventory-index/internal/models"
)

// Cmd groups the edit commands
var Cmd = &cobra.Command{
	Use:   "set",
	Short: "Record the quantity or sell price of an item",
	Long: `Record the quantity or sell price of an item.

Items are referenced by name (case-insensitive) or by identity key such as
"uuid:..." or "id:42". A quantity of 0 or a blank sell price clears the
value; a record with neither is removed from the ledger.`,
}

// QtyCmd sets a quantity
var QtyCmd = &cobra.Command{
	Use:   "qty <item> <quantity>",
	Short: "Set how many of an item you hold",
	Long: `Set how many of an item you hold. Quantities that are not numbers
are recorded as 0.`,
	Example: `  pickman set qty "Medical Pen" 12
  pickman set qty id:42 0`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return edit(cmd, args, (*inventory.Session).SetQuantity)
	},
}

// PriceCmd sets a sell price
var PriceCmd = &cobra.Command{
	Use:   "price <item> <sell price>",
	Short: "Set the price you sell an item for",
	Long: `Set the price you sell an item for. Positive numbers count towards the
sell total; any other text such as "N/A" or "ask" is kept as a label.`,
	Example: `  pickman set price "Medical Pen" 2500
  pickman set price "Medical Pen" "on request"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return edit(cmd, args, (*inventory.Session).SetSellPrice)
	},
}

func init() {
	Cmd.AddCommand(QtyCmd)
	Cmd.AddCommand(PriceCmd)
}

type editFunc func(*inventory.Session, models.CatalogItem, string) inventory.RowUpdate

func edit(cmd *cobra.Command, args []string, apply editFunc) error {
	session, err := root.LoadSession(cmd.Context())
	if err != nil {
		return err
	}

	item, ok := session.Find(args[0])
	if !ok {
		return fmt.Errorf("item not found in the market catalog: %q", args[0])
	}

	raw := ""
	if len(args) > 1 {
		raw = args[1]
	}
	update := apply(session, item, raw)
	return PrintUpdate(cmd.OutOrStdout(), item, update)
}

// PrintUpdate writes the normalized row of an edit.
func PrintUpdate(w io.Writer, item models.CatalogItem, u inventory.RowUpdate) error {
	if u.Removed {
		if _, err := fmt.Fprintf(w, "%s: removed from inventory\n", item.DisplayName()); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "%s: qty %s, sell %s, line total %s\n",
			item.DisplayName(), blankAs(u.QuantityText), blankAs(u.SellText), blankAs(u.LineTotalText)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Overall Inventory Value: %s\n", display.Amount(u.OverallValue))
	return err
}

func blankAs(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
