// Package app wires configuration, storage, the exchange engine and the game
// state into one object shared by the CLI commands and the interactive UI.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"horsemanager/internal/config"
	"horsemanager/internal/domain"
	"horsemanager/internal/exchange"
	"horsemanager/internal/game"
	"horsemanager/internal/pricing"
	"horsemanager/internal/store"
	"horsemanager/internal/ui"
	"horsemanager/internal/util"
)

var (
	// ErrNoMatch is returned when a query names no item.
	ErrNoMatch = errors.New("no matching item")

	// ErrAmbiguous is returned when a query names more than one item.
	ErrAmbiguous = errors.New("ambiguous item")
)

// App bundles the stores, the engine and the loaded game.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Calendar *util.EventCalendar
	Store    *store.SQLiteStore
	Export   *store.ParquetLedger
	Engine   *exchange.Engine
	State    *game.State
}

// New opens the database, loads the saved game or starts a new one from
// the configuration, and saves it.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = util.Discard()
	}
	cal, err := util.NewEventCalendar(cfg.Calendar.Holidays)
	if err != nil {
		return nil, fmt.Errorf("calendar: %w", err)
	}

	if dir := filepath.Dir(cfg.Storage.SQLitePath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	db, err := store.NewSQLiteStore(cfg.Storage.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", cfg.Storage.SQLitePath, err)
	}

	a := &App{
		Config:   cfg,
		Logger:   logger,
		Calendar: cal,
		Store:    db,
		Export:   store.NewParquetLedger(cfg.Storage.DataDir),
		Engine:   exchange.NewEngine(pricing.NewPolicy(cfg.Game.HolidayMarkup), db, logger),
	}
	if err := a.load(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) load(ctx context.Context) error {
	snap, err := a.Store.LoadSnapshot(ctx)
	switch {
	case errors.Is(err, store.ErrNoSnapshot):
		start, err := a.Config.StartDate()
		if err != nil {
			return err
		}
		g := a.Config.Game
		a.State = game.NewGame(game.Options{
			PlayerName:      g.PlayerName,
			StartingBalance: g.StartingBalance,
			ShopHorses:      g.ShopHorses,
			ShopJockeys:     g.ShopJockeys,
			Seed:            g.Seed,
			StartDate:       start,
		}, a.Calendar, a.Logger)
		return a.Save(ctx)
	case err != nil:
		return fmt.Errorf("loading game: %w", err)
	}

	a.State, err = game.Restore(snap, a.Calendar)
	if err != nil {
		return err
	}
	a.Logger.Debug("game loaded",
		"player", a.State.Player().Name,
		"date", a.State.Today().Format(store.DayLayout),
		"balance", a.State.Balance(),
	)
	return nil
}

// Save persists the game state.
func (a *App) Save(ctx context.Context) error {
	snap, err := a.State.Snapshot()
	if err != nil {
		return err
	}
	if err := a.Store.SaveSnapshot(ctx, snap); err != nil {
		return fmt.Errorf("saving game: %w", err)
	}
	return nil
}

// Close releases the database.
func (a *App) Close() error {
	return a.Store.Close()
}

// Resolve finds exactly one item in a catalog by ID or by (fuzzy) name. An
// exact, case-insensitive name match wins over fuzzy ones.
func (a *App) Resolve(kind domain.CatalogKind, query string) (domain.Item, error) {
	if item, ok := a.State.Lookup(kind, query); ok {
		return item, nil
	}

	var hits []domain.Item
	for _, m := range a.State.FindByName(query) {
		if m.Catalog != kind {
			continue
		}
		if strings.EqualFold(m.Item.DisplayName(), strings.TrimSpace(query)) {
			return m.Item, nil
		}
		hits = append(hits, m.Item)
	}
	switch len(hits) {
	case 0:
		return nil, fmt.Errorf("%w: %q in %s", ErrNoMatch, query, kind)
	case 1:
		return hits[0], nil
	}
	names := make([]string, len(hits))
	for i, h := range hits {
		names[i] = h.DisplayName()
	}
	return nil, fmt.Errorf("%w: %q matches %s", ErrAmbiguous, query, strings.Join(names, ", "))
}

// Trade resolves query in the catalog the direction draws from, exchanges
// it and saves the game when the exchange succeeded.
func (a *App) Trade(ctx context.Context, dir domain.Direction, query string) (exchange.Receipt, error) {
	item, err := a.Resolve(dir.Source(), query)
	if err != nil {
		return exchange.Receipt{}, err
	}
	r, err := a.Engine.Exchange(ctx, a.State, item.Key(), dir)
	if err != nil {
		return r, err
	}
	if r.OK {
		if err := a.Save(ctx); err != nil {
			return r, err
		}
	}
	return r, nil
}

// NextDay advances the clock, restocks the shop and saves. It returns the
// new date and the number of items restocked.
func (a *App) NextDay(ctx context.Context, days int) (time.Time, int, error) {
	if days < 1 {
		return time.Time{}, 0, fmt.Errorf("days = %d, must be >= 1", days)
	}
	today := a.State.AdvanceDay(days)
	added := a.State.Restock(a.Config.Game.ShopHorses, a.Config.Game.ShopJockeys)
	a.Logger.Info("new day",
		"date", today.Format(store.DayLayout),
		"event", a.State.TodayEvent().String(),
		"restocked", added,
	)
	return today, added, a.Save(ctx)
}

// ExportLedger copies the trades of a day (every day when empty) from the
// database to Parquet files and returns the files written.
func (a *App) ExportLedger(ctx context.Context, day string) ([]string, error) {
	trades, err := a.Store.ListTrades(ctx, day)
	if err != nil {
		return nil, err
	}
	paths, err := a.Export.Export(ctx, trades)
	if err != nil {
		return nil, err
	}
	a.Logger.Info("ledger exported", "day", day, "trades", len(trades), "files", len(paths))
	return paths, nil
}

// Navigator builds the interactive screen stack. Every successful trade is
// saved immediately; a failed save is returned by Navigator.Confirm.
func (a *App) Navigator(ctx context.Context) (*ui.Navigator, error) {
	nav, err := ui.NewNavigator(a.State, a.Engine, domain.Fields, a.Logger, ui.DefaultScreens()...)
	if err != nil {
		return nil, err
	}
	nav.OnTrade = func(exchange.Receipt) error {
		if err := a.Save(ctx); err != nil {
			a.Logger.Error("save after trade failed", "error", err)
			return err
		}
		return nil
	}
	return nav, nil
}

// Hooks returns the UI callbacks backed by this app.
func (a *App) Hooks() ui.Hooks {
	return ui.Hooks{
		NextDay: func(ctx context.Context) error {
			_, _, err := a.NextDay(ctx, 1)
			return err
		},
	}
}
