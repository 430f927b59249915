// Package list implements the command that shows the inventory view.
package list

import (
	"github.com/spf13/cobra"

	"pickman/inventory-index/cmd/common"
	"pickman/inventory-index/cmd/root"
	"pickman/inventory-index/internal/logging"
)

var (
	viewFlags common.ViewFlags
	format    string
)

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show catalog items with quantities, prices and totals",
	Long: `Show catalog items with quantities, prices and totals.

Without flags only owned items are listed (the home view). Use --all to list
the whole catalog, --search to match item names by keyword and --category or
--subcategory to narrow by category. The sell total covers the rows shown;
the overall inventory value covers every owned item.`,
	Example: `  pickman list
  pickman list --all --search "laser, rifle"
  pickman list -a -c Armor --subcategory Helmets --format markdown`,
	RunE: run,
}

func init() {
	viewFlags.Bind(Cmd)
	Cmd.Flags().StringVarP(&format, "format", "f", common.FormatTable, "Output format: table, markdown or tsv")
}

func run(cmd *cobra.Command, args []string) error {
	session, err := root.LoadSession(cmd.Context())
	if err != nil {
		return err
	}
	cfg := root.GetContainer().GetConfig()

	view := session.View(viewFlags.Criteria(cfg.View.OwnedOnly))
	root.GetLogger().Debug("Rendering inventory view",
		logging.F(logging.FieldCount, len(view.Rows)),
		logging.F(logging.FieldFormat, format))

	return common.WriteView(cmd.OutOrStdout(), view, format, cfg.View.Style)
}
