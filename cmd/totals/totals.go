// Package totals implements the command that prints the inventory totals.
package totals

import (
	"fmt"

	"github.com/spf13/cobra"

	"pickman/inventory-index/cmd/common"
	"pickman/inventory-index/cmd/root"
	"pickman/inventory-index/internal/render"
)

var (
	viewFlags common.ViewFlags
	markdown  bool
)

// Cmd represents the totals command
var Cmd = &cobra.Command{
	Use:   "totals",
	Short: "Print the sell total and the overall inventory value",
	Long: `Print the sell total and the overall inventory value.

The sell total adds quantity times sell price over the items selected by the
view flags, skipping labels. The overall inventory value adds quantity times
listed price over the whole catalog, whatever the flags.`,
	RunE: run,
}

func init() {
	viewFlags.Bind(Cmd)
	Cmd.Flags().BoolVarP(&markdown, "markdown", "m", false, "Render the totals as styled markdown")
}

func run(cmd *cobra.Command, args []string) error {
	session, err := root.LoadSession(cmd.Context())
	if err != nil {
		return err
	}
	cfg := root.GetContainer().GetConfig()
	view := session.View(viewFlags.Criteria(cfg.View.OwnedOnly))

	if !markdown {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s", view.Status, render.Totals(view))
		return err
	}
	out, err := render.Glamour(render.TotalsMarkdown(view), cfg.View.Style)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
