package game

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"horsemanager/internal/domain"
	"horsemanager/internal/store"
	"horsemanager/internal/util"
)

// Options are the parameters of a new game.
type Options struct {
	PlayerName      string
	StartingBalance int
	ShopHorses      int
	ShopJockeys     int
	Seed            uint64
	StartDate       time.Time
}

// NewGame creates a game whose shop is stocked from the seed.
func NewGame(opts Options, cal *util.EventCalendar, logger *slog.Logger) *State {
	s := NewState(Player{Name: opts.PlayerName, Balance: opts.StartingBalance}, opts.StartDate, opts.Seed, cal)
	added := s.Restock(opts.ShopHorses, opts.ShopJockeys)
	if logger != nil {
		logger.Info("new game",
			"player", opts.PlayerName,
			"balance", opts.StartingBalance,
			"seed", opts.Seed,
			"date", s.Today().Format(store.DayLayout),
			"stocked", added,
		)
	}
	return s
}

// Restock tops the shop up to the given number of horses and jockeys. The
// new stock depends only on the seed and the current date, so reloading a
// saved game and restocking again yields the same items.
func (s *State) Restock(horses, jockeys int) int {
	gen := NewGenerator(s.seed, s.date.Format(store.DayLayout))
	added := 0
	for n := len(s.ItemsOfType(domain.CatalogShop, domain.HorseType)); n < horses; n++ {
		added += s.Stock(domain.CatalogShop, gen.Horse())
	}
	for n := len(s.ItemsOfType(domain.CatalogShop, domain.JockeyType)); n < jockeys; n++ {
		added += s.Stock(domain.CatalogShop, gen.Jockey())
	}
	return added
}

// Snapshot captures the state for persistence.
func (s *State) Snapshot() (*store.Snapshot, error) {
	snap := &store.Snapshot{
		Player: store.PlayerRecord{
			Name:    s.player.Name,
			Balance: s.player.Balance,
			Date:    s.date,
			Seed:    s.seed,
		},
	}
	for _, kind := range s.kinds() {
		for i, item := range s.catalogs[kind].items {
			r, err := store.ItemToRecord(item, kind, i)
			if err != nil {
				return nil, err
			}
			snap.Items = append(snap.Items, r)
		}
	}
	return snap, nil
}

// Restore rebuilds a state from a snapshot. Items are placed by catalog and
// position.
func Restore(snap *store.Snapshot, cal *util.EventCalendar) (*State, error) {
	p := snap.Player
	s := NewState(Player{Name: p.Name, Balance: p.Balance}, p.Date, p.Seed, cal)

	records := append([]store.ItemRecord(nil), snap.Items...)
	sortRecords(records)
	for _, r := range records {
		item, err := r.Item()
		if err != nil {
			return nil, fmt.Errorf("restoring game: %w", err)
		}
		if s.Stock(r.Catalog, item) == 0 {
			return nil, fmt.Errorf("restoring game: duplicate item %s", r.ID)
		}
	}
	return s, nil
}

func sortRecords(records []store.ItemRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Catalog != records[j].Catalog {
			return records[i].Catalog < records[j].Catalog
		}
		return records[i].Position < records[j].Position
	})
}
