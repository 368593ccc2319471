package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"horsemanager/internal/table"
)

// find <query>: fuzzy search by name across the shop and the stable.
func findCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <query>",
		Short: "Search every catalog by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches := appCtx.State.FindByName(strings.Join(args, " "))
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), table.EmptyMessage)
				return nil
			}
			for _, m := range matches {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s %s\n",
					table.AlignLeft(string(m.Catalog), 7),
					table.AlignLeft(m.Item.EntityType(), 7),
					table.AlignLeft(m.Item.Key(), 37),
					table.AlignLeft(table.Truncate(m.Item.DisplayName(), 28), 28),
					table.FormatCurrency(m.Item.CanonicalPrice()),
				)
			}
			return nil
		},
	}
}
