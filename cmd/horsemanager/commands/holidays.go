package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"horsemanager/internal/store"
)

func holidaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "holidays",
		Short: "List the yearly holidays and the next one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cal := appCtx.State.Calendar()
			for _, md := range cal.Holidays() {
				fmt.Fprintln(cmd.OutOrStdout(), md)
			}
			if next, ok := cal.NextHoliday(appCtx.State.Today()); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Next holiday: %s\n", next.Format(store.DayLayout))
			}
			return nil
		},
	}
}
