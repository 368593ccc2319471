package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"horsemanager/internal/domain"
	"horsemanager/internal/fields"
	"horsemanager/internal/table"
)

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Inspect the trade ledger",
	}
	cmd.AddCommand(ledgerListCmd(), ledgerExportCmd())
	return cmd
}

func ledgerListCmd() *cobra.Command {
	var day string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded trades",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			trades, err := appCtx.Store.ListTrades(cmd.Context(), day)
			if err != nil {
				return err
			}
			entities := make([]fields.Entity, len(trades))
			for i, t := range trades {
				entities[i] = t
			}
			lines := table.Render(entities, domain.Fields.Describe(domain.TradeType), table.Options{
				Title:  "Ledger",
				Styles: styles(),
			})
			_, err = fmt.Fprintln(cmd.OutOrStdout(), table.String(lines))
			return err
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "only trades of this day (YYYY-MM-DD)")
	return cmd
}

func ledgerExportCmd() *cobra.Command {
	var day string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export trades to daily Parquet files under the data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := appCtx.ExportLedger(cmd.Context(), day)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&day, "day", "", "only trades of this day (YYYY-MM-DD)")
	return cmd
}
