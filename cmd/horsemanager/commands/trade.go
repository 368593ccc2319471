package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"horsemanager/internal/domain"
	"horsemanager/internal/table"
)

func buyCmd() *cobra.Command {
	return tradeCmd(domain.Buying, "buy <id|name>", "Buy an item from the shop")
}

func sellCmd() *cobra.Command {
	return tradeCmd(domain.Selling, "sell <id|name>", "Sell one of your items to the shop")
}

func tradeCmd(dir domain.Direction, use, short string) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			item, err := appCtx.Resolve(dir.Source(), query)
			if err != nil {
				return err
			}
			price := appCtx.Engine.Price(appCtx.State, item, dir)
			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "Would %s %s for %s. Re-run with --yes to confirm.\n",
					dir, item.DisplayName(), table.FormatCurrency(price))
				return nil
			}

			r, err := appCtx.Trade(cmd.Context(), dir, item.Key())
			if err != nil {
				return err
			}
			if !r.OK {
				return fmt.Errorf("%s: %w", r.Message(), r.Err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.Message())
			fmt.Fprintf(cmd.OutOrStdout(), "Balance: %s\n", table.FormatCurrency(r.BalanceAfter))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the trade")
	return cmd
}
