package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"horsemanager/internal/domain"
	"horsemanager/internal/store"
)

func nextDayCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "next-day",
		Short: "Advance the in-game date and restock the shop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today, added, err := appCtx.NextDay(cmd.Context(), days)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Today is %s. %d new items in the shop.\n",
				today.Format(store.DayLayout), added)
			if appCtx.State.TodayEvent() == domain.EventHoliday {
				fmt.Fprintln(cmd.OutOrStdout(), "It's a holiday: the shop sells at a discount and pays a premium.")
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&days, "days", "d", 1, "number of days to advance")
	return cmd
}
