package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"horsemanager/internal/ui"
)

func runUI(ctx context.Context) error {
	nav, err := appCtx.Navigator(ctx)
	if err != nil {
		return err
	}
	model := ui.NewModel(ctx, nav, appCtx.State.Player().Name, appCtx.Hooks(), appCtx.Logger)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}
	// Trades are saved as they happen; this catches anything since.
	return appCtx.Save(ctx)
}
