package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"horsemanager/internal/domain"
	"horsemanager/internal/fields"
	"horsemanager/internal/game"
	"horsemanager/internal/table"
)

func shopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shop",
		Short: "List the horses and jockeys for sale at today's prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCatalog(cmd.OutOrStdout(), "Shop", domain.Buying)
		},
	}
}

func stableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stable",
		Short: "List your horses and jockeys at today's selling prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCatalog(cmd.OutOrStdout(), "Player", domain.Selling)
		},
	}
}

// printCatalog prints one table per item type of the catalog the direction
// draws from, priced for that direction.
func printCatalog(w io.Writer, title string, dir domain.Direction) error {
	st := styles()
	quote := appCtx.Engine.Quote(appCtx.State, dir)
	for _, typeName := range []string{domain.HorseType, domain.JockeyType} {
		items := game.ByRarity(appCtx.State.ItemsOfType(dir.Source(), typeName))
		entities := make([]fields.Entity, len(items))
		for i, it := range items {
			entities[i] = it
		}
		lines := table.Render(entities, domain.Fields.Describe(typeName), table.Options{
			Title:  fmt.Sprintf("%s %ss", title, typeName),
			Quote:  quote,
			Styles: st,
		})
		if _, err := fmt.Fprintln(w, table.String(lines)); err != nil {
			return err
		}
	}
	return nil
}
