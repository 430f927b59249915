// Package importer implements the command that merges a file into the ledger.
package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"pickman/inventory-index/cmd/root"
	"pickman/inventory-index/internal/impexp"
)

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge quantities and sell prices from a file into the inventory",
	Long: `Merge quantities and sell prices from a file into the inventory.

Records are matched to catalog items by exact name. Matched items take the
quantity and sell price of the file; names missing from the catalog are
reported and skipped. Supported extensions: ` + strings.Join(impexp.SupportedExtensions(), ", ") + `.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := root.LoadSession(cmd.Context())
		if err != nil {
			return err
		}
		result, err := root.GetContainer().GetMerger().Import(args[0], session.Index())
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		return PrintResult(cmd.OutOrStdout(), result)
	},
}

// PrintResult writes an import summary.
func PrintResult(w io.Writer, r impexp.ImportResult) error {
	if _, err := fmt.Fprintf(w, "Imported %d items\n", r.Imported); err != nil {
		return err
	}
	if r.Skipped > 0 {
		if _, err := fmt.Fprintf(w, "Skipped %d records without a name\n", r.Skipped); err != nil {
			return err
		}
	}
	if len(r.Unmatched) > 0 {
		if _, err := fmt.Fprintf(w, "Not in the market catalog: %s\n", strings.Join(r.Unmatched, ", ")); err != nil {
			return err
		}
	}
	return nil
}
