// Package export implements the command that writes the ledger to a file.
package export

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pickman/inventory-index/cmd/root"
	"pickman/inventory-index/internal/impexp"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export owned and priced items to a file",
	Long: `Export every catalog item with a quantity or a sell price to a file.

The format follows the file extension: ` + strings.Join(impexp.SupportedExtensions(), ", ") + `.
A file name without an extension gets the default export format appended.`,
	Example: `  pickman export inventory.xlsx
  pickman export backup`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := root.LoadSession(cmd.Context())
		if err != nil {
			return err
		}
		written, err := root.GetContainer().GetMerger().Export(args[0], session.Index())
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported inventory to %s\n", written)
		return err
	},
}
